package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/mint"
	"github.com/x-xyz/marketclient/domain/txn"
)

var (
	query listing.Query

	mintReq  mint.MintRequest
	mintFile string

	listDraft txn.Draft
)

func init() {
	flags := catalogCmd.Flags()
	flags.StringVar(&query.Search, "search", "", "case-insensitive match on name and description")
	flags.StringVar(&query.Category, "category", "", "exact category")
	flags.StringVar((*string)(&query.ListingType), "type", "", `"Fixed Price" or "Auction"`)
	flags.StringVar((*string)(&query.Sort), "sort", "", "lowToHigh or highToLow")

	flags = mintCmd.Flags()
	flags.StringVar(&mintFile, "file", "", "image to upload")
	flags.StringVar(&mintReq.Title, "title", "", "token name")
	flags.StringVar(&mintReq.Description, "description", "", "token description")
	flags.StringVar(&mintReq.Category, "category", "", "category, GET /categories lists the usual ones")
	flags.StringVar(&mintReq.Price, "price", "", "price in ETH")

	flags = listCmd.Flags()
	flags.StringVar((*string)(&listDraft.ListingType), "type", string(listing.ListingTypeFixedPrice), `"Fixed Price" or "Auction"`)
	flags.StringVar(&listDraft.Price, "price", "", "fixed price in ETH")
	flags.StringVar(&listDraft.StartingBid, "starting-bid", "", "auction starting bid in ETH")
	flags.StringVar(&listDraft.DurationHours, "hours", "", "auction duration in hours")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Reconciles the catalog and prints the matching listings",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if !query.Sort.IsValid() {
			return fmt.Errorf("invalid sort %q", query.Sort)
		}
		snapshot, err := services.Catalog.Refresh(cmdCtx)
		if err != nil {
			return err
		}
		listings, _ := services.Catalog.Search(cmdCtx, query)
		return printJSON(map[string]interface{}{
			"version":  snapshot.Version,
			"listings": listings,
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <address|ens name>",
	Short: "Prints the tokens a user owns and the auctions they take part in",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		user, err := services.Ens.Resolve(cmdCtx, args[0])
		if err != nil {
			return err
		}
		if user.IsEmpty() {
			return fmt.Errorf("%s: %w", args[0], domain.ErrNotFound)
		}
		profile, err := services.Catalog.Profile(cmdCtx, user)
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Uploads an image with its metadata and mints it",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if len(mintFile) == 0 {
			return domain.ErrMissingFields
		}
		f, err := os.Open(mintFile)
		if err != nil {
			return err
		}
		defer f.Close()

		req := mintReq
		req.File = f
		req.FileName = filepath.Base(mintFile)
		res, err := services.Mint.Mint(cmdCtx, req)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <tokenId> <price>",
	Short: "Buys a fixed price listing",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := domain.ParseTokenId(args[0])
		if err != nil {
			return err
		}
		return printOutcome(services.Txn.Buy(cmdCtx, id, args[1]))
	},
}

var bidCmd = &cobra.Command{
	Use:   "bid <tokenId> <amount>",
	Short: "Places a bid on an auction",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := domain.ParseTokenId(args[0])
		if err != nil {
			return err
		}
		return printOutcome(services.Txn.Bid(cmdCtx, id, args[1]))
	},
}

var listCmd = &cobra.Command{
	Use:   "list <tokenId>",
	Short: "Lists an owned token for sale or auction",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := domain.ParseTokenId(args[0])
		if err != nil {
			return err
		}
		switch listDraft.ListingType {
		case listing.ListingTypeFixedPrice:
			return printOutcome(services.Txn.ListForSale(cmdCtx, id, listDraft.Price))
		case listing.ListingTypeAuction:
			return printOutcome(services.Txn.ListForAuction(cmdCtx, id, listDraft.StartingBid, listDraft.DurationHours))
		}
		return fmt.Errorf("invalid listing type %q", listDraft.ListingType)
	},
}

var endAuctionCmd = &cobra.Command{
	Use:   "end-auction <tokenId>",
	Short: "Finalizes an auction past its end time",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := domain.ParseTokenId(args[0])
		if err != nil {
			return err
		}
		return printOutcome(services.Txn.EndAuction(cmdCtx, id))
	},
}

// printOutcome prints the user facing message of a rejection instead of the raw error
func printOutcome(res *txn.Outcome, err error) error {
	var rejection *txn.RejectionError
	if errors.As(err, &rejection) {
		return errors.New(rejection.Message)
	}
	if errors.Is(err, domain.ErrTxPending) {
		fmt.Println(domain.ErrTxPending.Error())
		return nil
	}
	if err != nil {
		return err
	}
	return printJSON(res)
}
