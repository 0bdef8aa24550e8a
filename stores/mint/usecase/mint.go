package usecase

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	pricefomatter "github.com/x-xyz/marketclient/base/price_fomatter"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/mint"
	"github.com/x-xyz/marketclient/domain/notify"
	"github.com/x-xyz/marketclient/domain/txn"
)

const DefaultMaxFileSize = 20 << 20

var ErrFileTooLarge = errors.New("file is too large")

type MintUseCaseCfg struct {
	Contract  domain.MarketplaceContract
	Pinning   domain.PinningService
	Pending   txn.PendingRepo
	Notifier  notify.Notifier
	Refresher listing.RefreshRequester
	// MaxFileSize in bytes, DefaultMaxFileSize when zero
	MaxFileSize int64
}

type mintUseCase struct {
	contract    domain.MarketplaceContract
	pinning     domain.PinningService
	pending     txn.PendingRepo
	notifier    notify.Notifier
	refresher   listing.RefreshRequester
	maxFileSize int64
	met         metrics.Service
}

func NewMintUseCase(cfg *MintUseCaseCfg) mint.Usecase {
	maxFileSize := cfg.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &mintUseCase{
		contract:    cfg.Contract,
		pinning:     cfg.Pinning,
		pending:     cfg.Pending,
		notifier:    cfg.Notifier,
		refresher:   cfg.Refresher,
		maxFileSize: maxFileSize,
		met:         metrics.New("mint"),
	}
}

// the wallet signs one mint at a time
var mintKey = txn.PendingKey{Action: txn.ActionMint}

func (u *mintUseCase) Mint(c bCtx.Ctx, req mint.MintRequest) (*mint.MintResult, error) {
	if req.File == nil || isBlank(req.FileName, req.Title, req.Description, req.Category, req.Price) {
		return nil, domain.ErrMissingFields
	}
	if !listing.IsValidCategory(req.Category) {
		return nil, domain.ErrInvalidCategory
	}
	req.Category = strings.TrimSpace(req.Category)
	price, err := pricefomatter.ParseEther(req.Price)
	if err != nil || price.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	content, err := io.ReadAll(io.LimitReader(req.File, u.maxFileSize+1))
	if err != nil {
		c.WithField("err", err).Error("failed to read upload")
		return nil, err
	}
	if int64(len(content)) > u.maxFileSize {
		return nil, ErrFileTooLarge
	}
	mime := mimetype.Detect(content)
	if !strings.HasPrefix(mime.String(), "image/") {
		c.WithFields(log.Fields{
			"fileName": req.FileName,
			"mime":     mime.String(),
		}).Warn("rejected non image upload")
		return nil, domain.ErrNotAnImage
	}

	if u.pending != nil {
		if !u.pending.TryMark(c, mintKey) {
			return nil, domain.ErrActionInProgress
		}
		defer u.pending.Clear(c, mintKey)
	}

	res, err := u.mint(c, req, content, price)
	if errors.Is(err, domain.ErrTxPending) {
		u.notify(c, notify.KindInfo, "Mint submitted. The token appears once the transaction is mined.")
		if u.refresher != nil {
			u.refresher.Request(c, string(txn.ActionMint))
		}
		return nil, err
	}
	if err != nil {
		u.met.BumpSum("failed", 1)
		u.notify(c, notify.KindError, mintFailedMessage(err))
		return nil, err
	}

	u.met.BumpSum("succeeded", 1)
	u.notify(c, notify.KindSuccess, "NFT Minted Successfully!")
	if u.refresher != nil {
		u.refresher.Request(c, string(txn.ActionMint))
	}
	return res, nil
}

func (u *mintUseCase) mint(c bCtx.Ctx, req mint.MintRequest, content []byte, price *big.Int) (*mint.MintResult, error) {
	imageCid, err := u.pinning.PinFile(c, req.FileName, content)
	if err != nil {
		c.WithField("err", err).Error("pinning.PinFile failed")
		return nil, xerrors.Errorf("failed to upload NFT image: %w", err)
	}
	imageUri := "ipfs://" + imageCid

	metadata := domain.Metadata{
		Name:        req.Title,
		Description: req.Description,
		Image:       imageUri,
		Attributes: []domain.Attribute{
			{TraitType: domain.TraitCategory, Value: req.Category},
			{TraitType: domain.TraitPrice, Value: strings.TrimSpace(req.Price)},
		},
	}
	metadataCid, err := u.pinning.PinJson(c, req.Title, metadata)
	if err != nil {
		c.WithField("err", err).Error("pinning.PinJson failed")
		return nil, xerrors.Errorf("failed to upload NFT metadata: %w", err)
	}
	metadataUri := "ipfs://" + metadataCid

	receipt, err := u.contract.Mint(bCtx.Detach(c), metadataUri, req.Title, req.Description, req.Category, price)
	if err != nil {
		c.WithFields(log.Fields{
			"uri":   metadataUri,
			"price": price.String(),
			"err":   err,
		}).Error("contract.Mint failed")
		return nil, err
	}

	c.WithFields(log.Fields{
		"tokenId": receipt.MintedTokenId,
		"tx":      receipt.TxHash,
	}).Info("token minted")
	return &mint.MintResult{
		TokenId:     receipt.MintedTokenId,
		TxHash:      receipt.TxHash,
		ImageUri:    imageUri,
		MetadataUri: metadataUri,
	}, nil
}

func (u *mintUseCase) notify(c bCtx.Ctx, kind notify.Kind, message string) {
	if u.notifier != nil {
		u.notifier.Notify(c, kind, message)
	}
}

func mintFailedMessage(err error) string {
	return fmt.Sprintf("NFT Minting Failed: %s", err.Error())
}

func isBlank(fields ...string) bool {
	for _, f := range fields {
		if len(strings.TrimSpace(f)) == 0 {
			return true
		}
	}
	return false
}
