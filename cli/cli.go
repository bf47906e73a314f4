package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"hopebridge/donorflow"
)

// Environment provides an abstraction around the execution environment
type Environment struct {
	Stderr io.Writer
	Stdout io.Writer
	Stdin  io.Reader
}

type PurposesCmd struct{}

func (cmd *PurposesCmd) Run(env *Environment, client donorflow.SiteClient) error {
	catalog := donorflow.BuildCatalog(context.Background(), client, donorflow.CatalogOptions{})

	fmt.Fprintln(env.Stdout, "Available donation purposes:")
	for _, option := range catalog.Options {
		if option.ObjectID != "" {
			fmt.Fprintf(env.Stdout, "  %v (object %v)\n", option.Label, option.ObjectID)
		} else {
			fmt.Fprintf(env.Stdout, "  %v\n", option.Label)
		}
	}

	return nil
}

type DonateCmd struct {
	Amount    float64       `required:"" help:"the donation amount in dollars."`
	Name      string        `help:"the donor's name."`
	Email     string        `help:"the donor's email address for the receipt."`
	Anonymous bool          `help:"donate anonymously."`
	Purpose   string        `default:"General Donation" help:"the purpose label to donate toward."`
	ObjectID  string        `help:"a specific program/campaign/news object to donate toward."`
	Timeout   time.Duration `default:"5m" help:"how long to wait for the donation to settle."`
}

func (cmd *DonateCmd) Run(env *Environment, client donorflow.SiteClient, confirmer donorflow.PaymentConfirmer, receipts donorflow.ReceiptStore) error {
	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	catalog := donorflow.BuildCatalog(ctx, client, donorflow.CatalogOptions{
		PreselectObjectID: cmd.ObjectID,
	})

	purpose := catalog.Selected
	if !catalog.Locked {
		for _, option := range catalog.Options {
			if option.Label == cmd.Purpose {
				purpose = option
				break
			}
		}
	}

	flow := donorflow.NewFlow(client, confirmer, donorflow.FlowConfig{
		ReturnURL: os.Getenv("DONATION_RETURN_URL"),
	})
	defer flow.Close()

	draft := donorflow.DonationDraft{
		Amount:     cmd.Amount,
		DonorName:  cmd.Name,
		DonorEmail: cmd.Email,
		Anonymous:  cmd.Anonymous,
		Purpose:    purpose,
	}

	ref, err := flow.Submit(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Donation %v created toward %q, confirming payment...\n", ref.DonationID, purpose.Label)

	if err := flow.ConfirmPayment(ctx); err != nil {
		flow.Abort()
		return err
	}

	select {
	case <-flow.Settled():
	case <-ctx.Done():
		flow.Abort()
		return fmt.Errorf("gave up waiting for donation %v to settle: %w", ref.DonationID, ctx.Err())
	}

	if flow.Phase() != donorflow.PhaseSucceeded {
		if err := flow.Err(); err != nil {
			return err
		}
		return fmt.Errorf("donation %v did not complete", ref.DonationID)
	}

	fmt.Fprintf(env.Stdout, "Thank you! Your $%v donation toward %q is complete.\n", flow.SettledAmount(), purpose.Label)

	donorName := cmd.Name
	if cmd.Anonymous {
		donorName = "Anonymous"
	}

	receipt := donorflow.Receipt{
		DonationID: ref.DonationID,
		Amount:     flow.SettledAmount(),
		Purpose:    purpose.Label,
		DonorName:  donorName,
		Status:     "completed",
		CreatedAt:  time.Now().UTC(),
	}

	if err := receipts.SaveReceipt(ctx, receipt); err != nil {
		fmt.Fprintf(env.Stderr, "couldn't record a local receipt for donation %v: %v\n", ref.DonationID, err)
	}

	return nil
}

type ReceiptsCmd struct{}

func (cmd *ReceiptsCmd) Run(env *Environment, receipts donorflow.ReceiptStore) error {
	all, err := receipts.ListReceipts(context.Background())
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Fprintln(env.Stdout, "No donations recorded yet.")
		return nil
	}

	for _, receipt := range all {
		fmt.Fprintf(env.Stdout, "%v  $%.2f  %v  %v (%v)\n",
			receipt.CreatedAt.Format("2006-01-02"), receipt.Amount, receipt.Purpose, receipt.DonorName, receipt.Status)
	}

	return nil
}

type CLI struct {
	Purposes PurposesCmd `cmd:"" help:"Lists the donation purposes currently offered by the site."`
	Donate   DonateCmd   `cmd:"" help:"Makes a donation end to end: creates the intent, confirms payment, and waits for settlement."`
	Receipts ReceiptsCmd `cmd:"" help:"Shows locally recorded donation receipts."`
}

func Run(env Environment) int {
	app := CLI{}

	baseURL := os.Getenv("HOPEBRIDGE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client, err := donorflow.NewSiteClient(donorflow.ClientConfig{
		BaseURL:   baseURL,
		AuthToken: os.Getenv("HOPEBRIDGE_API_TOKEN"),
	})
	if err != nil {
		panic(err.Error())
	}

	confirmer, err := donorflow.NewStripeConfirmer(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		panic(err.Error())
	}

	receipts, err := donorflow.NewReceiptStore()
	if err != nil {
		panic(err.Error())
	}

	cntx := kong.Parse(&app,
		kong.Description("hopebridge donor tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cntx.BindTo(client, (*donorflow.SiteClient)(nil))
	cntx.BindTo(confirmer, (*donorflow.PaymentConfirmer)(nil))
	cntx.BindTo(receipts, (*donorflow.ReceiptStore)(nil))

	err = cntx.Run(&env)
	cntx.FatalIfErrorf(err)

	return 0
}
