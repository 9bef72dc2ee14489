// Package main provides a CLI for running predictions and stake evaluations
// against a local game-log CSV, without the API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/courtside/internal/cache"
	"github.com/yourusername/courtside/internal/ensemble"
	"github.com/yourusername/courtside/internal/gamelog"
	"github.com/yourusername/courtside/internal/models"
	"github.com/yourusername/courtside/internal/service"
	"github.com/yourusername/courtside/internal/staking"
)

var (
	csvPath      string
	artifactPath string
	thresholds   []float64
	minGames     int

	odds            float64
	bankroll        float64
	remainingEvents int
	probability     float64
	confidence      string
	profitTarget    float64
	iterations      int

	appLog *logrus.Logger
)

func init() {
	appLog = logrus.New()
	appLog.SetLevel(logrus.WarnLevel)

	predictCmd.Flags().StringVarP(&csvPath, "csv", "f", "", "Path to the game-log CSV file")
	predictCmd.Flags().StringVar(&artifactPath, "artifact", "", "Path to an external model artifact (default: embedded)")
	predictCmd.Flags().Float64SliceVarP(&thresholds, "threshold", "t", nil, "Point threshold(s) to score")
	predictCmd.Flags().IntVar(&minGames, "min-games", 5, "Minimum games required for the ensemble")
	predictCmd.MarkFlagRequired("csv")
	predictCmd.MarkFlagRequired("threshold")

	stakeCmd.Flags().Float64VarP(&probability, "probability", "p", 0, "Predicted win probability")
	stakeCmd.Flags().Float64VarP(&odds, "odds", "o", 0, "Decimal odds")
	stakeCmd.Flags().Float64VarP(&bankroll, "bankroll", "b", 0, "Current bankroll")
	stakeCmd.Flags().IntVarP(&remainingEvents, "remaining", "r", 1, "Remaining events in the project")
	stakeCmd.Flags().StringVarP(&confidence, "confidence", "c", "MEDIUM", "Prediction confidence (VERY_LOW, LOW, MEDIUM, HIGH)")
	stakeCmd.MarkFlagRequired("probability")
	stakeCmd.MarkFlagRequired("odds")
	stakeCmd.MarkFlagRequired("bankroll")

	simulateCmd.Flags().Float64VarP(&probability, "probability", "p", 0, "Predicted win probability")
	simulateCmd.Flags().Float64VarP(&odds, "odds", "o", 0, "Decimal odds")
	simulateCmd.Flags().Float64VarP(&bankroll, "bankroll", "b", 0, "Starting bankroll")
	simulateCmd.Flags().IntVarP(&remainingEvents, "events", "e", 10, "Events to play per trajectory")
	simulateCmd.Flags().Float64Var(&profitTarget, "target", 0, "Profit target that ends a trajectory early")
	simulateCmd.Flags().StringVarP(&confidence, "confidence", "c", "MEDIUM", "Prediction confidence (VERY_LOW, LOW, MEDIUM, HIGH)")
	simulateCmd.Flags().IntVar(&iterations, "iterations", 1000, "Monte Carlo iterations")
	simulateCmd.MarkFlagRequired("probability")
	simulateCmd.MarkFlagRequired("odds")
	simulateCmd.MarkFlagRequired("bankroll")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(stakeCmd)
	rootCmd.AddCommand(simulateCmd)
}

var rootCmd = &cobra.Command{
	Use:   "courtside",
	Short: "Score point thresholds and size stakes from a game-log CSV",
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score OVER probabilities for point thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		csvText, err := os.ReadFile(csvPath)
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}

		var bundle *ensemble.Bundle
		if artifactPath != "" {
			bundle, err = ensemble.LoadBundleFromFile(artifactPath)
		} else {
			bundle, err = ensemble.LoadDefaultBundle()
		}
		if err != nil {
			return err
		}

		predictor := ensemble.NewPredictor(bundle, minGames, appLog)
		predCache := cache.NewPredictionCache(0, 1)
		svc := service.NewPredictionService(gamelog.NewParser(), predictor, predCache, appLog)

		outcome, err := svc.Predict(context.Background(), string(csvText), thresholds)
		if err != nil {
			return err
		}

		fmt.Printf("Games: %d (warnings: %d)\n", outcome.SampleSize, outcome.Warnings)
		fmt.Printf("Season avg: %.1f  Last 10: %.1f  Range: %.0f-%.0f\n\n",
			outcome.PlayerStats.SeasonAverage, outcome.PlayerStats.Last10Average,
			outcome.PlayerStats.MinPoints, outcome.PlayerStats.MaxPoints)

		for _, res := range outcome.Results {
			adjusted := ""
			if res.Adjusted {
				adjusted = " (adjusted)"
			}
			fmt.Printf("%.1f pts: OVER %.1f%%  UNDER %.1f%%  [%s, %s]%s\n",
				res.Threshold, res.OverProbability*100, res.UnderProbability*100,
				res.Confidence, res.MethodUsed, adjusted)
		}
		return nil
	},
}

var stakeCmd = &cobra.Command{
	Use:   "stake",
	Short: "Compute a Kelly stake recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := staking.NewEngine(appLog)
		rec, err := engine.Evaluate(staking.Input{
			Probability:     probability,
			Odds:            odds,
			Bankroll:        bankroll,
			RemainingEvents: remainingEvents,
			Confidence:      models.Confidence(confidence),
		})
		if err != nil {
			return err
		}

		if !rec.Recommended {
			fmt.Printf("No stake recommended: %s\n", rec.Rationale)
			fmt.Printf("Kelly fraction: %.4f  Break-even: %.1f%%\n", rec.KellyFraction, rec.BreakEvenProbability*100)
			return nil
		}

		fmt.Printf("Stake: %.2f (%.1f%% of bankroll)\n", rec.StakeAmount, rec.StakeFraction*100)
		fmt.Printf("Risk tier: %s  Kelly fraction: %.4f\n", rec.RiskTier, rec.KellyFraction)
		fmt.Printf("Potential profit: %.2f  Break-even: %.1f%%\n", rec.PotentialProfit, rec.BreakEvenProbability*100)
		fmt.Printf("Expected over %d events: %.1f wins / %.1f losses, profit %.2f\n",
			remainingEvents, rec.ExpectedWins, rec.ExpectedLosses, rec.ExpectedTotalProfit)
		fmt.Println(rec.Rationale)
		return nil
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo bankroll projection under the staking policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := staking.NewEngine(appLog)
		result, err := engine.Simulate(cmd.Context(), staking.SimulationInput{
			Probability: probability,
			Odds:        odds,
			Bankroll:    bankroll,
			Events:      remainingEvents,
			Target:      profitTarget,
			Confidence:  models.Confidence(confidence),
			Iterations:  iterations,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Iterations: %d\n", result.Iterations)
		fmt.Printf("Mean return: %+.1f%%  Std: %.1f%%\n", result.MeanReturn*100, result.StdReturn*100)
		fmt.Printf("VaR 95%%: %+.1f%%  VaR 99%%: %+.1f%%\n", result.VaR95*100, result.VaR99*100)
		fmt.Printf("P(profit): %.1f%%  P(ruin): %.1f%%\n",
			result.ProbabilityOfProfit*100, result.ProbabilityOfRuin*100)
		if profitTarget > 0 {
			fmt.Printf("P(target): %.1f%%\n", result.ProbabilityOfTarget*100)
		}
		fmt.Printf("Median final bankroll: %.2f\n", result.MedianFinalBankroll)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
