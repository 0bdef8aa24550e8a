package chain

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	baseeth "github.com/x-xyz/marketclient/base/ethereum"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
)

// RevertError carries the reason a state-changing call was refused, either while
// estimating gas or after being mined
type RevertError struct {
	Method string
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("%s reverted: %s", e.Method, e.Reason)
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// PendingError is returned when a broadcast transaction got no receipt within the
// receipt timeout. It may still be mined.
type PendingError struct {
	Method string
	TxHash common.Hash
	Err    error
}

func (e *PendingError) Error() string {
	return fmt.Sprintf("%s %s pending: %v", e.Method, e.TxHash.Hex(), e.Err)
}

func (e *PendingError) Unwrap() error {
	return e.Err
}

func (e *PendingError) Is(target error) bool {
	return target == domain.ErrTxPending
}

type ClientCfg struct {
	RpcUrl  string
	ChainId int64
	// PrivateKey is hex encoded, transactions are unavailable when empty
	PrivateKey string
	// MaxInflight bounds concurrent rpc requests
	MaxInflight int
	// ReceiptTimeout bounds the wait for a transaction to be mined
	ReceiptTimeout time.Duration
}

type Client interface {
	Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends a transaction then waits until it is mined
	Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, value *big.Int, method string, params ...interface{}) (*types.Receipt, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
	// Account returns the signing address, false when no wallet is configured
	Account() (common.Address, bool)
	Backend() domain.EthClientRepo
}

type clientImpl struct {
	backend        domain.EthClientRepo
	chainId        *big.Int
	key            *ecdsa.PrivateKey
	receiptTimeout time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, domain.ErrRpcUnavailable
	}
	return NewClientWithBackend(ctx, baseeth.NewTrottledClient(client, cfg.MaxInflight), cfg)
}

func NewClientWithBackend(ctx bCtx.Ctx, backend domain.EthClientRepo, cfg *ClientCfg) (Client, error) {
	c := &clientImpl{
		backend:        backend,
		chainId:        big.NewInt(cfg.ChainId),
		receiptTimeout: cfg.ReceiptTimeout,
	}
	if c.receiptTimeout <= 0 {
		c.receiptTimeout = 5 * time.Minute
	}
	if len(cfg.PrivateKey) > 0 {
		key, err := baseeth.PrivateKeyFromHex(cfg.PrivateKey)
		if err != nil {
			ctx.WithField("err", err).Error("invalid wallet private key")
			return nil, err
		}
		c.key = key
	}
	return c, nil
}

func (c *clientImpl) Backend() domain.EthClientRepo {
	return c.backend
}

func (c *clientImpl) Account() (common.Address, bool) {
	if c.key == nil {
		return common.Address{}, false
	}
	return baseeth.AddressOf(c.key), true
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	n, err := c.backend.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.BlockNumber failed")
		return 0, err
	}
	return n, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	if from, ok := c.Account(); ok {
		msg.From = from
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Warn("backend.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, value *big.Int, method string, params ...interface{}) (*types.Receipt, error) {
	if c.key == nil {
		return nil, domain.ErrWalletUnavailable
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, err
	}
	opts.Context = ctx
	opts.Value = value

	contract := bind.NewBoundContract(addr, _abi, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		reason := baseeth.RevertReason(err)
		ctx.WithFields(log.Fields{
			"method": method,
			"reason": reason,
			"err":    err,
		}).Warn("contract.Transact failed")
		return nil, &RevertError{Method: method, Reason: reason, Err: err}
	}
	ctx.WithFields(log.Fields{
		"method": method,
		"tx":     tx.Hash().Hex(),
	}).Info("transaction sent")

	// the tx is out, a caller going away must not stop the wait for its receipt
	waitCtx, cancel := bCtx.WithTimeout(bCtx.Detach(ctx), c.receiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"tx":     tx.Hash().Hex(),
			"err":    err,
		}).Error("bind.WaitMined failed")
		return nil, &PendingError{Method: method, TxHash: tx.Hash(), Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		reason := c.replayRevert(ctx, opts.From, tx, receipt)
		ctx.WithFields(log.Fields{
			"method": method,
			"tx":     tx.Hash().Hex(),
			"reason": reason,
		}).Warn("transaction reverted")
		return receipt, &RevertError{Method: method, Reason: reason, Err: domain.ErrTxReverted}
	}
	return receipt, nil
}

// replayRevert re-runs a failed transaction as a call at its block to recover the reason
func (c *clientImpl) replayRevert(ctx bCtx.Ctx, from common.Address, tx *types.Transaction, receipt *types.Receipt) string {
	msg := ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	_, err := c.backend.CallContract(bCtx.Detach(ctx), msg, receipt.BlockNumber)
	if err == nil {
		return domain.ErrTxReverted.Error()
	}
	return baseeth.RevertReason(err)
}

// IsRevert reports whether err carries a rejection reason from the node or the contract
func IsRevert(err error) (*RevertError, bool) {
	var revertErr *RevertError
	if errors.As(err, &revertErr) {
		return revertErr, true
	}
	return nil, false
}
