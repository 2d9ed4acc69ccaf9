package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayusman/mudra/internal/predict"
	"github.com/ayusman/mudra/internal/session"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "mudra",
		Short: "Sign-language recognition toolkit",
		Long: `mudra runs the sign-language recognition pipeline offline.

It replays recorded hand-landmark frame logs through the classifier and
word matcher, and answers word-completion queries against the built-in
vocabulary.

Examples:
  mudra replay frames.json        # Classify a recorded landmark stream
  mudra predict TH                # Complete a fingerspelled prefix
  mudra demo                      # Classify the built-in preset poses`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mudra.yaml)")
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newPredictCommand())
	rootCmd.AddCommand(newDemoCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads the optional config file. Recognized keys override the
// classifier and matcher thresholds, e.g.:
//
//	classifier:
//	  min_confidence: 0.7
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mudra")
	}

	viper.SetDefault("classifier.min_confidence", 0.7)

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func newPredictCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <partial-word>",
		Short: "Complete a fingerspelled prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := args[0]
			predictor := predict.NewDefault()

			preds := predictor.Predictions(partial)
			if len(preds) == 0 {
				fmt.Println("No predictions")
			} else {
				fmt.Println("Predictions:")
				for _, p := range preds {
					fmt.Printf("  %s\n", p)
				}
			}

			if letters := predictor.NextLetterSuggestions(partial); len(letters) > 0 {
				fmt.Printf("Next letters: %v\n", letters)
			}
			fmt.Printf("Completion confidence: %.2f\n", predictor.CompletionConfidence(partial))

			if word, similarity := predictor.Nearest(partial); word != "" && !predictor.IsLikelyComplete(partial) {
				fmt.Printf("Closest word: %s (%.2f)\n", word, similarity)
			}
			return nil
		},
	}
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Classify the built-in preset poses",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := session.NewManager(session.DefaultConfig())
			if err != nil {
				return err
			}
			sess, err := mgr.Create()
			if err != nil {
				return err
			}
			defer mgr.Remove(sess.ID())

			for _, pose := range presetPoses() {
				res := sess.ProcessFrame(pose.hand)
				fmt.Printf("%-16s -> %-2s confidence=%.2f quality=%s\n",
					pose.name, res.Letter, res.Confidence, res.Quality)
				sess.HandLost()
			}
			return nil
		},
	}
}
