package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var MarketplaceABI abi.ABI

// contract methods used by the client, the deployed contract may expose more
var marketplaceABI = `[
{"type":"function","name":"getTotalMintedNFTs","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},
{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},
{"type":"function","name":"nftDetails","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"string","name":"title"},{"type":"string","name":"description"},{"type":"string","name":"category"},{"type":"uint256","name":"price"},{"type":"uint8","name":"status"}]},
{"type":"function","name":"auctions","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"address","name":"seller"},{"type":"uint256","name":"startingBid"},{"type":"uint256","name":"highestBid"},{"type":"address","name":"highestBidder"},{"type":"uint256","name":"endTime"},{"type":"bool","name":"ended"}]},
{"type":"function","name":"mintNFT","stateMutability":"nonpayable","inputs":[{"type":"string","name":"tokenURI"},{"type":"string","name":"title"},{"type":"string","name":"description"},{"type":"string","name":"category"},{"type":"uint256","name":"price"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"listNFTForSale","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"function","name":"listNFTForAuction","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"startingBid"},{"type":"uint256","name":"duration"}],"outputs":[]},
{"type":"function","name":"buyNFT","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"bidOnNFT","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"endAuction","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// LoadMarketplaceABI parses an abi override, e.g. one exported from the contract build artifacts.
// An empty string returns the built-in abi.
func LoadMarketplaceABI(raw string) (abi.ABI, error) {
	if len(strings.TrimSpace(raw)) == 0 {
		return MarketplaceABI, nil
	}
	return abi.JSON(strings.NewReader(raw))
}
