package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/onboarding"
)

// offersCmd represents the offers command group.
var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "List and create offers",
}

// offersListCmd represents the offers list command.
var offersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of offers",
	Long: `Fetch one page of offers and print it.

The search, type and status filters narrow the fetched page only; the total
is always the server's. When a filter is active the footer says how many rows
of the page matched.

Examples:
  offerdesk offers list
  offerdesk offers list --page 2 --per-page 10
  offerdesk offers list --search acme --field company --status accepted
  offerdesk offers list --output json`,
	Args: cobra.NoArgs,
	RunE: runOffersList,
}

// offersCreateCmd represents the offers create command.
var offersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an offer",
	Long: `Validate and submit a new offer.

Examples:
  offerdesk offers create --user 12 --expires 2026-12-31 --price 49.99
  offerdesk offers create --plan yearly --addition refundable --addition negotiable \
      --user 12 --expires 2026-12-31 --price 499`,
	Args: cobra.NoArgs,
	RunE: runOffersCreate,
}

func init() {
	rootCmd.AddCommand(offersCmd)
	offersCmd.AddCommand(offersListCmd)
	offersCmd.AddCommand(offersCreateCmd)

	offersListCmd.Flags().Int("page", 1, "Page number (1-based)")
	offersListCmd.Flags().Int("per-page", 0, "Rows per page (default from config)")
	offersListCmd.Flags().StringP("search", "s", "", "Search text")
	offersListCmd.Flags().String("field", "", "Search field: name, email, phone, company, job_title, type, status")
	offersListCmd.Flags().String("type", offers.All, "Plan type filter: All, monthly, yearly, pay_as_you_go")
	offersListCmd.Flags().String("status", offers.All, "Status filter: All, accepted, rejected, pending")
	offersListCmd.Flags().StringP("output", "o", OutputTable, "Output format: table, json or yaml")

	offersCreateCmd.Flags().String("plan", string(offers.PlanMonthly), "Plan type: monthly, yearly, pay_as_you_go")
	offersCreateCmd.Flags().StringSlice("addition", nil, "Addition: refundable, on_demand, negotiable (repeatable)")
	offersCreateCmd.Flags().Int("user", 0, "User ID the offer is for")
	offersCreateCmd.Flags().String("expires", "", "Expiration date (YYYY-MM-DD)")
	offersCreateCmd.Flags().String("price", "", "Price")
}

// offerListing is the --output json|yaml shape of offers list.
type offerListing struct {
	Data   []offers.Offer `json:"data" yaml:"data"`
	Meta   offers.Meta    `json:"meta" yaml:"meta"`
	Window offers.Window  `json:"window" yaml:"window"`
	Filter *offers.Filter `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// runOffersList handles the offers list command.
func runOffersList(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	search, _ := cmd.Flags().GetString("search")
	fieldName, _ := cmd.Flags().GetString("field")
	typeFilter, _ := cmd.Flags().GetString("type")
	statusFilter, _ := cmd.Flags().GetString("status")
	format, _ := cmd.Flags().GetString("output")

	if err := checkOutput(format); err != nil {
		return err
	}
	if page < 1 {
		return apperrors.New(apperrors.ErrValidation, fmt.Sprintf("--page must be at least 1, got %d", page))
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireSession(); err != nil {
		return err
	}

	cfg, err := listConfig(a)
	if err != nil {
		return err
	}
	list := offers.NewListView(cfg)
	if perPage != 0 {
		if _, err := list.SetRowsPerPage(perPage); err != nil {
			return err
		}
	}
	if fieldName != "" {
		field, err := offers.ParseSearchField(fieldName)
		if err != nil {
			return apperrors.New(apperrors.ErrValidation, err.Error())
		}
		list.SetSearchField(field)
	}
	list.SetSearch(search)
	list.SetTypeFilter(typeFilter)
	list.SetStatusFilter(statusFilter)

	req, err := list.SetPage(page - 1)
	if err != nil {
		return err
	}
	result, err := a.client.ListOffers(cmdContext(cmd), req.Window)
	if err != nil {
		return err
	}
	list.Resolve(req.Seq, result, nil)

	rows := list.Visible()
	if format != OutputTable {
		out := offerListing{Data: rows, Meta: result.Meta, Window: list.Window()}
		if list.FilterActive() {
			f := list.Filter()
			out.Filter = &f
		}
		return writeData(cmd.OutOrStdout(), format, out)
	}

	cmd.Println(renderOffers(rows))
	footer := fmt.Sprintf("Rows per page: %d   %s", list.Window().PerPage, list.Window().RangeLabel(list.Total()))
	if list.FilterActive() {
		footer += fmt.Sprintf("   (filter active: %d shown on this page)", len(rows))
	}
	cmd.Println(footer)
	return nil
}

func renderOffers(rows []offers.Offer) string {
	if len(rows) == 0 {
		return "No offers found"
	}
	data := make([][]string, 0, len(rows))
	for _, o := range rows {
		data = append(data, []string{
			strconv.Itoa(o.ID),
			o.UserName,
			o.Email,
			o.Phone,
			o.Company,
			o.JobTitle,
			offers.Label(o.Type),
			o.Status,
			strconv.FormatFloat(o.Price, 'f', 2, 64),
		})
	}
	return renderTable([]string{"ID", "Name", "Email", "Phone", "Company", "Job Title", "Type", "Status", "Price"}, data)
}

// runOffersCreate handles the offers create command.
func runOffersCreate(cmd *cobra.Command, args []string) error {
	plan, _ := cmd.Flags().GetString("plan")
	additions, _ := cmd.Flags().GetStringSlice("addition")
	userID, _ := cmd.Flags().GetInt("user")
	expires, _ := cmd.Flags().GetString("expires")
	price, _ := cmd.Flags().GetString("price")

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireSession(); err != nil {
		return err
	}

	draft := onboarding.NewDraft()
	draft.PlanType = plan
	for _, tag := range additions {
		if !draft.HasAddition(tag) {
			draft.ToggleAddition(tag)
		}
	}
	draft.UserID = userID
	draft.Expired = expires
	draft.Price = price

	res := onboarding.NewService(a.client, a.logger).Submit(cmdContext(cmd), draft)
	if !res.Created {
		// Field messages travel in the error's details.
		if res.Err != nil {
			return res.Err
		}
		return apperrors.New(apperrors.ErrAPI, res.Toast)
	}

	cmd.Printf("✓ %s\n", res.Toast)
	return nil
}
