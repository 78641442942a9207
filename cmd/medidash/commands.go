package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/export"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/news"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/report"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/newsapi"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

var (
	asJSON bool

	rankState     string
	rankMeasure   string
	rankStart     int
	rankEnd       int
	rankStatistic string
	rankOrder     string

	breakdownState   string
	breakdownMeasure string
	valueCategory    string
	paymentCategory  string

	exportFormat string
	exportOut    string

	newsOutlet string
	newsTopic  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the per-state home health summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		dash, err := loadDashboard(ctx)
		if err != nil {
			return err
		}
		summary := dash.Summary()
		if asJSON {
			return printJSON(cmd.OutOrStdout(), summary)
		}
		return printSummaryTable(cmd.OutOrStdout(), summary)
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Rank hospice providers on one measure",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rankMeasure == "" {
			return fmt.Errorf("--measure is required")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		dash, err := loadDashboard(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), dash.HospiceRanking(report.RankingParams{
			State:     rankState,
			Measure:   rankMeasure,
			StartYear: rankStart,
			EndYear:   rankEnd,
			Statistic: rankStatistic,
			Order:     rankOrder,
		}))
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Break hospital payments down by value and payment category",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		dash, err := loadDashboard(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), dash.HospitalBreakdown(report.BreakdownParams{
			State:           breakdownState,
			Measure:         breakdownMeasure,
			ValueCategory:   valueCategory,
			PaymentCategory: paymentCategory,
		}))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the state summary as CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != export.FormatCSV && exportFormat != export.FormatXLSX {
			return fmt.Errorf("unsupported format %q (use csv or xlsx)", exportFormat)
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		dash, err := loadDashboard(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if exportOut != "" && exportOut != "-" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}
		return export.WriteSummary(out, exportFormat, dash.Summary())
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the five latest health headlines for an outlet, or search by topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newsapi.New(nil, newsapi.Config{
			APIKey:     cfg.NewsAPIKey,
			BaseURL:    cfg.NewsBaseURL,
			Timeout:    cfg.NewsTimeout,
			Mock:       cfg.NewsMock,
			RatePerSec: cfg.NewsRatePerSec,
			Burst:      cfg.NewsBurst,
		})
		adapter := news.NewAdapter(client, logger, nil, cfg.NewsTimeout)

		switch {
		case newsTopic != "":
			return printJSON(cmd.OutOrStdout(), adapter.Search(cmd.Context(), newsTopic))
		case newsOutlet != "":
			return printJSON(cmd.OutOrStdout(), adapter.Headlines(cmd.Context(), newsOutlet))
		}
		return printJSON(cmd.OutOrStdout(), adapter.Outlets(cmd.Context()))
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	rankingsCmd.Flags().StringVar(&rankState, "state", report.AllStates, "State code or All")
	rankingsCmd.Flags().StringVar(&rankMeasure, "measure", "", "Hospice measure name (required)")
	rankingsCmd.Flags().IntVar(&rankStart, "start", 2019, "First measurement start year")
	rankingsCmd.Flags().IntVar(&rankEnd, "end", 2022, "Last measurement start year")
	rankingsCmd.Flags().StringVar(&rankStatistic, "statistic", report.StatisticMedian, "mean or median")
	rankingsCmd.Flags().StringVar(&rankOrder, "order", report.OrderTop, "County order: top or bottom")

	breakdownCmd.Flags().StringVar(&breakdownState, "state", report.AllStates, "State code or All")
	breakdownCmd.Flags().StringVar(&breakdownMeasure, "measure", "heart attack", "Payment measure substring")
	breakdownCmd.Flags().StringVar(&valueCategory, "value-category", "", "Value of care category for the region table")
	breakdownCmd.Flags().StringVar(&paymentCategory, "payment-category", "", "Payment category for the region table")

	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatCSV, "csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")

	newsCmd.Flags().StringVar(&newsOutlet, "outlet", "", "News outlet id for headlines")
	newsCmd.Flags().StringVar(&newsTopic, "topic", "", "Free-text topic to search")
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSummaryTable(w io.Writer, summary model.StateSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tPROVIDERS\tQUALITY\tSPENDING\tNURSING %\tAIDE %")
	for _, row := range summary.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.1f\t%.1f\n",
			row.State,
			row.Providers,
			formatOptional(row.QualityOfCare),
			formatOptional(row.SpendingPerEpisode),
			row.OfferingPct[model.ServiceNursing],
			row.OfferingPct[model.ServiceHomeHealthAide],
		)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t\t\t\t\n", summary.TotalProviders)
	return tw.Flush()
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
