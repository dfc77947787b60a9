package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artpar/sloganforge/internal/core/export"
	"github.com/artpar/sloganforge/internal/shell/render"
)

// stdoutPath as --out writes the artifact to stdout.
const stdoutPath = "-"

type exportFlags struct {
	request requestFlags
	text    string
	pick    int
	kind    string
	out     string
	logo    string

	style        export.StyleConfig
	font         string
	format       string
	alignment    string
	logoPosition string
}

func (f *exportFlags) bind(cmd *cobra.Command) {
	f.request.bind(cmd)
	f.style = export.DefaultStyle()

	fl := cmd.Flags()
	fl.StringVar(&f.text, "text", "", "Slogan text to export instead of generating one")
	fl.IntVar(&f.pick, "pick", 0, "Number of the generated slogan to export, as listed by generate")
	fl.StringVar(&f.kind, "kind", string(export.KindPDF), "Artifact format: png, pdf or txt")
	fl.StringVar(&f.out, "out", "", "Output file, a directory, or - for stdout (default: derived from the slogan)")
	fl.StringVar(&f.logo, "logo", "", "PNG, JPEG or GIF logo to place next to the slogan")

	fl.StringVar(&f.font, "font", string(f.style.Font), "Font family")
	fl.StringVar(&f.style.Color, "color", f.style.Color, "Text color as #RRGGBB")
	fl.IntVar(&f.style.Size, "size", f.style.Size, "Font size in pixels")
	fl.StringVar(&f.format, "format", string(f.style.Format), "Page format: portrait or landscape")
	fl.StringVar(&f.style.BackgroundColor, "background", f.style.BackgroundColor, "Background color as #RRGGBB")
	fl.StringVar(&f.alignment, "alignment", string(f.style.Alignment), "Text alignment: left, center or right")
	fl.StringVar(&f.logoPosition, "logo-position", string(f.style.LogoPosition), "Logo position: top, bottom, left or right")
	fl.IntVar(&f.style.LogoSize, "logo-size", f.style.LogoSize, "Logo size in pixels")
}

func (f *exportFlags) styleConfig() export.StyleConfig {
	s := f.style
	s.Font = export.Font(f.font)
	s.Format = export.Format(f.format)
	s.Alignment = export.Alignment(f.alignment)
	s.LogoPosition = export.LogoPosition(f.logoPosition)
	return s
}

func exportCmd(app *App) *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a slogan as a PNG, PDF or text file",
		Long: `Render a slogan as a PNG, PDF or text file.

The slogan is either given with --text or generated from --company,
--industry and --keywords, in which case --pick chooses which one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), app, cmd, &flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runExport(ctx context.Context, app *App, cmd *cobra.Command, flags *exportFlags) error {
	kind, err := export.ParseKind(flags.kind)
	if err != nil {
		return fmt.Errorf("invalid --kind: %w", err)
	}

	text := strings.TrimSpace(flags.text)
	if text == "" {
		if text, err = pickSlogan(ctx, app, flags); err != nil {
			return err
		}
	}

	var logo []byte
	if flags.logo != "" {
		if logo, err = os.ReadFile(flags.logo); err != nil {
			return fmt.Errorf("read logo: %w", err)
		}
	}

	renderer := render.NewRenderer(render.DefaultConfig(), app.log())
	artifact, err := renderer.Render(ctx, kind, render.Input{
		Text:  text,
		Style: flags.styleConfig(),
		Logo:  logo,
	})
	if err != nil {
		return err
	}

	if flags.out == stdoutPath {
		_, err := cmd.OutOrStdout().Write(artifact.Body)
		return err
	}

	path := outputPath(flags.out, artifact.Filename)
	if err := os.WriteFile(path, artifact.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	app.log().Debug("wrote artifact", "path", path, "kind", kind, "bytes", len(artifact.Body))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", path, len(artifact.Body))
	return err
}

// pickSlogan generates slogans from the request flags and returns the one
// chosen by --pick, or by a prompt when --pick is unset and stdin is a
// terminal. Without either the first slogan is used.
func pickSlogan(ctx context.Context, app *App, flags *exportFlags) (string, error) {
	if err := flags.request.complete(ctx, app); err != nil {
		return "", err
	}
	_, slogans, err := preview(ctx, app, &flags.request)
	if err != nil {
		return "", err
	}

	switch {
	case flags.pick > 0:
		if flags.pick > len(slogans) {
			return "", fmt.Errorf("invalid --pick: %d slogans were generated", len(slogans))
		}
		return slogans[flags.pick-1].Text, nil
	case flags.pick < 0:
		return "", errors.New("invalid --pick: must be positive")
	case app.Interactive():
		options := make([]string, len(slogans))
		for i, s := range slogans {
			options[i] = s.Text
		}
		i, err := app.Prompter.Select(ctx, SelectConfig{Message: "Slogan", Options: options})
		if err != nil {
			return "", err
		}
		if i < 0 || i >= len(slogans) {
			return "", errors.New("no slogan selected")
		}
		return slogans[i].Text, nil
	default:
		return slogans[0].Text, nil
	}
}

// outputPath resolves --out: empty means the artifact name in the working
// directory, an existing directory receives the artifact name.
func outputPath(out, filename string) string {
	if out == "" {
		return filename
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, filename)
	}
	return out
}
