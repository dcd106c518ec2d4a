package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"github.com/trainmeet/internal/pkg/errors"
	"github.com/trainmeet/internal/pkg/timestamp"
	"github.com/trainmeet/internal/usecase"
	"github.com/trainmeet/internal/usecase/dto"
)

type planOptions struct {
	from      string
	to        string
	arrive    string
	jsonOut   bool
	noSpinner bool
}

func newPlanCommand(root *rootOptions) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan routes without the interactive form",
		Example: `  trainmeet plan --from "Zürich HB, Schweiz; Bern, Schweiz" --to "Genève, Schweiz" --arrive 13.05.2024-19:00
  trainmeet plan --from Basel --to Bern --arrive 01.06.2024-09:30 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, planner, log, err := setup(root)
			if err != nil {
				return err
			}
			defer log.Sync()

			req := dto.PlanRequest{
				StartLocations: valueOr(opts.from, cfg.Form.StartLocations),
				Destination:    valueOr(opts.to, cfg.Form.Destination),
				ArrivalTime:    valueOr(opts.arrive, cfg.Form.ArrivalTime),
			}

			return runPlan(cmd, planner, req, opts.jsonOut, !opts.noSpinner && !opts.jsonOut)
		},
	}

	cmd.Flags().StringVarP(&opts.from, "from", "f", "", `departure places separated by ";"`)
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "destination place")
	cmd.Flags().StringVarP(&opts.arrive, "arrive", "a", "", "arrival time as DD.MM.YYYY-HH:MM")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.noSpinner, "no-spinner", false, "do not show the progress spinner")

	return cmd
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, planner, log, err := setup(opts)
	if err != nil {
		return err
	}
	defer log.Sync()

	req := dto.PlanRequest{
		StartLocations: cfg.Form.StartLocations,
		Destination:    cfg.Form.Destination,
		ArrivalTime:    cfg.Form.ArrivalTime,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(`Departure places (separated by ";")`).
				Value(&req.StartLocations),
			huh.NewInput().
				Title("Destination").
				Value(&req.Destination),
			huh.NewInput().
				Title("Arrival time").
				Placeholder("DD.MM.YYYY-HH:MM").
				CharLimit(timestamp.MaxLength).
				Validate(func(s string) error {
					if _, ok := timestamp.Normalize(s); !ok {
						return timestamp.ErrInvalidFormat
					}
					return nil
				}).
				Value(&req.ArrivalTime),
		),
	).WithTheme(theme())

	if err := form.RunWithContext(cmd.Context()); err != nil {
		return err
	}

	return runPlan(cmd, planner, req, false, true)
}

// runPlan executes the search and prints either the tables or JSON. Invalid
// input prints the generic warning and is not treated as a command failure.
func runPlan(cmd *cobra.Command, planner *usecase.RoutePlannerUseCase, req dto.PlanRequest, jsonOut, withSpinner bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		resp    *dto.PlanResponse
		planErr error
	)

	// resp and planErr are only read after done is closed
	done := make(chan struct{})
	go func() {
		defer close(done)
		resp, planErr = planner.Plan(ctx, req)
	}()

	if withSpinner {
		err := spinner.New().
			Context(ctx).
			Title(fmt.Sprintf("Searching rail connections to %s...", req.Destination)).
			ActionWithErr(func(ctx context.Context) error {
				select {
				case <-done:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			}).
			Run()
		if err != nil {
			return fmt.Errorf("route search aborted: %w", err)
		}
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("route search aborted: %w", err)
	}

	out := cmd.OutOrStdout()

	if planErr == nil && resp == nil {
		return stderrors.New("route search returned no result")
	}

	if planErr != nil {
		if !stderrors.Is(planErr, errors.ErrInvalidInput) {
			return planErr
		}
		if jsonOut {
			return json.NewEncoder(out).Encode(map[string]interface{}{"error": errors.ErrInvalidInput})
		}
		fmt.Fprintln(out, warningStyle.Render(errors.ErrInvalidInput.Message))
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	RenderPlan(out, resp)
	return nil
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
