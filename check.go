/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Seednode/wordguess/games/wordmatch"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
)

// newEvaluator builds the process-wide evaluator: the built-in variant
// groups, plus any from --variants.
func newEvaluator(cfg *Config) (*wordmatch.Evaluator, error) {
	if cfg.variants == "" {
		return wordmatch.Default(), nil
	}

	f, err := os.Open(cfg.variants)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	extra, err := wordmatch.LoadVariantGroups(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.variants, err)
	}

	dict, err := wordmatch.NewVariantDictionary(append(wordmatch.DefaultGroups(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.variants, err)
	}

	logf(cfg, "START: Loaded %d extra variant groups from %s", len(extra), cfg.variants)

	return wordmatch.New(dict), nil
}

func describeDecision(d wordmatch.Decision) string {
	if !d.Match {
		return fmt.Sprintf("no match (%q vs %q)", d.Guess, d.Target)
	}
	return fmt.Sprintf("match via %s (%q vs %q)", d.Stage, d.Guess, d.Target)
}

func newCheckCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <guess> <target>",
		Short: "Report whether a guess would be accepted for a target word.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEvaluator(cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), describeDecision(e.Evaluate(args[0], args[1])))

			return err
		},
	}
}

// Longest guess or target, in bytes, the check endpoint evaluates.
const maxCheckLength = 256

func serveCheck(cfg *Config, e *wordmatch.Evaluator, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		q := r.URL.Query()
		guess, target := q.Get("guess"), q.Get("target")
		if target == "" {
			http.Error(w, "missing target", http.StatusBadRequest)
			return
		}

		if len(guess) > maxCheckLength || len(target) > maxCheckLength {
			http.Error(w, "guess or target too long", http.StatusRequestEntityTooLarge)
			return
		}

		body, err := json.Marshal(e.Evaluate(guess, target))
		if err != nil {
			errs <- err
			http.Error(w, "encoding failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		written, err := w.Write(append(body, '\n'))
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Check result (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}
