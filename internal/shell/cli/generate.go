package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/input"
)

// =============================================================================
// Request Flags
// =============================================================================

// requestFlags are the generator inputs shared by generate and export.
type requestFlags struct {
	company  string
	industry string
	keywords string
	tone     string
}

func (f *requestFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.company, "company", "", "Company name")
	cmd.Flags().StringVar(&f.industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&f.keywords, "keywords", "", "Comma-separated keywords")
	cmd.Flags().StringVar(&f.tone, "tone", "", "Tone: professional, creative, friendly or bold")
}

// complete prompts for every missing value, or fails naming the first one
// when prompting is not possible.
func (f *requestFlags) complete(ctx context.Context, app *App) error {
	fields := []struct {
		flag    string
		message string
		value   *string
	}{
		{"company", "Company name", &f.company},
		{"industry", "Industry", &f.industry},
		{"keywords", "Keywords (comma-separated)", &f.keywords},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) != "" {
			continue
		}
		if !app.Interactive() {
			return fmt.Errorf("--%s is required: %w", field.flag, ErrNotInteractive)
		}
		v, err := app.Prompter.Input(ctx, InputConfig{
			Message:   field.message,
			Validator: required,
		})
		if err != nil {
			return err
		}
		*field.value = v
	}

	if f.tone == "" && app.Interactive() {
		tones := slogan.Tones()
		options := make([]string, len(tones))
		for i, t := range tones {
			options[i] = string(t)
		}
		i, err := app.Prompter.Select(ctx, SelectConfig{
			Message: "Tone",
			Options: options,
			Default: string(slogan.DefaultTone),
		})
		if err != nil {
			return err
		}
		if i >= 0 && i < len(tones) {
			f.tone = string(tones[i])
		}
	}
	return nil
}

func (f *requestFlags) input() generator.Input {
	return generator.Input{
		CompanyName: f.company,
		Industry:    f.industry,
		Keywords:    slogan.ParseKeywords(f.keywords),
		Tone:        f.tone,
	}
}

func required(s string) error {
	if input.Text(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// preview validates the request and generates its slogans.
func preview(ctx context.Context, app *App, f *requestFlags) (slogan.Request, []slogan.Slogan, error) {
	gen := generator.New(nil, generator.Config{}, app.log())
	req, slogans, err := gen.Preview(ctx, f.input())
	if err != nil {
		var fieldErr *input.FieldError
		if errors.As(err, &fieldErr) {
			return slogan.Request{}, nil, fmt.Errorf("invalid --%s: %s", flagName(fieldErr.Field), fieldErr.Message)
		}
		return slogan.Request{}, nil, err
	}
	app.log().Debug("generated slogans", "tone", req.Tone, "count", len(slogans))
	return req, slogans, nil
}

func flagName(field string) string {
	if field == "company_name" {
		return "company"
	}
	return field
}

// =============================================================================
// generate
// =============================================================================

type generateOutput struct {
	Request slogan.Request `json:"request"`
	Slogans []sloganOutput `json:"slogans"`
	Total   int            `json:"total"`
}

type sloganOutput struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Length string `json:"length"`
}

func generateCmd(app *App) *cobra.Command {
	var (
		flags  requestFlags
		length string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate slogans for a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := slogan.ParseLength(length)
			if err != nil {
				return fmt.Errorf("invalid --length: %w", err)
			}
			if err := flags.complete(cmd.Context(), app); err != nil {
				return err
			}
			req, slogans, err := preview(cmd.Context(), app, &flags)
			if err != nil {
				return err
			}
			slogans = slogan.FilterByLength(slogans, l)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), req, slogans)
			}
			return writeList(cmd.OutOrStdout(), slogans)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&length, "length", "", "Only show short, medium or long slogans")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a numbered list")
	return cmd
}

func writeList(w io.Writer, slogans []slogan.Slogan) error {
	for i, s := range slogans {
		if _, err := fmt.Fprintf(w, "%2d. %s\n", i+1, s.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, req slogan.Request, slogans []slogan.Slogan) error {
	out := generateOutput{
		Request: req,
		Slogans: make([]sloganOutput, 0, len(slogans)),
		Total:   len(slogans),
	}
	for _, s := range slogans {
		out.Slogans = append(out.Slogans, sloganOutput{
			ID:     s.ID,
			Text:   s.Text,
			Length: string(slogan.LengthOf(s.Text)),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
