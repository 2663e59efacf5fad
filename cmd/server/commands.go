package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fadilmartias/recruit-admin/internal/client"
	"github.com/fadilmartias/recruit-admin/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := ConnectDB()
		if err != nil {
			return err
		}
		if err := Migrate(db); err != nil {
			return err
		}
		log.Info("migration complete")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default settings catalogue",
	Long: `Inserts statuses, evaluation fields, roles, applicant fields, dashboard
cards and display settings. Rows whose key already exists are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogue, err := seed.Load(seedFile)
		if err != nil {
			return err
		}
		db, err := ConnectDB()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		res, err := seed.Run(ctx, db, catalogue, log)
		if err != nil {
			return err
		}
		var total int64
		for _, n := range res {
			total += n
		}
		log.Info("seed complete", zap.Int64("inserted", total))
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview FIELD_ID=RATING...",
	Short: "Score ratings against a running server's evaluation fields",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ratings, err := parseRatingArgs(args)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		score, err := apiClient().PreviewScore(ctx, ratings)
		if err != nil {
			return err
		}
		stars := strings.Repeat("★", score.FullStars)
		if score.HalfStar {
			stars += "½"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.1f %s (%d) rated %d fields, total active weight %d%%\n",
			score.DisplayRating, stars, score.Points, score.RatedCount, score.TotalActiveWeight)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print pipeline counts from a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		s, err := apiClient().Summary(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "applicants: %d  pass rate: %.1f%%  offer rate: %.1f%%\n", s.Total, s.PassRate, s.OfferRate)
		statuses := make([]string, 0, len(s.ByStatus))
		for status := range s.ByStatus {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		for _, status := range statuses {
			fmt.Fprintf(out, "  %-14s %d\n", status, s.ByStatus[status])
		}
		for _, m := range s.Monthly {
			fmt.Fprintf(out, "  %s %d\n", m.Key, m.Count)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Catalogue YAML to seed instead of the built-in defaults")
}

func apiClient() *client.Client {
	c := client.New(apiURL, timeout)
	if userID != "" {
		c.As(userID)
	}
	return c
}

func parseRatingArgs(args []string) (map[string]int, error) {
	ratings := make(map[string]int, len(args))
	for _, arg := range args {
		id, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("expected FIELD_ID=RATING, got %q", arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("rating for %s: %w", id, err)
		}
		ratings[id] = n
	}
	return ratings, nil
}
