package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Krymelte/trm/codec"
	"github.com/Krymelte/trm/compress"
	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/encoding"
	"github.com/Krymelte/trm/format"
	"github.com/Krymelte/trm/internal/hash"
)

// toJSONCmd represents the to-json command
var toJSONCmd = &cobra.Command{
	Use:   "to-json <input.trm> <output.json>",
	Short: "Convert a TRM file to JSON",
	Long: `Convert a TRM file to JSON. The variant is detected automatically:
binary layout first, legacy "key = value" text second, raw base64 fallback
last.

Example:
  trmconv to-json stages.trm stages.json
  trmconv to-json --compress=zstd stages.trm stages.json.zst`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var opts []codec.Option
		if allowBinary, _ := cmd.Flags().GetBool("allow-binary"); allowBinary {
			opts = append(opts, codec.WithNULStripRetry())
		}
		if minRun, _ := cmd.Flags().GetInt("preview-min-run"); minRun > 0 {
			opts = append(opts, codec.WithPreviewMinRun(minRun))
		}

		doc, err := codec.Decode(data, opts...)
		if err != nil {
			return err
		}
		slog.Debug("decoded input", "kind", doc.Kind().String(), "bytes", len(data))

		jsonData, err := document.Marshal(doc)
		if err != nil {
			return err
		}

		if verify, _ := cmd.Flags().GetBool("verify"); verify {
			if err := verifyRoundTrip(doc, jsonData, data); err != nil {
				return err
			}
		}

		out := jsonData
		name, _ := cmd.Flags().GetString("compress")
		compression, ok := format.ParseCompressionType(name)
		if !ok {
			return fmt.Errorf("unknown compression type %q", name)
		}
		if compression != format.CompressionNone {
			cc, err := compress.GetCodec(compression)
			if err != nil {
				return err
			}
			if out, err = cc.Compress(jsonData); err != nil {
				return err
			}
			slog.Debug("compressed output", "type", compression.String(),
				"in", len(jsonData), "out", len(out))
		}

		return os.WriteFile(args[1], out, 0o644)
	},
}

// verifyRoundTrip re-encodes the JSON artifact and compares content digests
// with the original file. Only the binary and raw variants are byte-exact;
// the text variant drops comments and normalizes spacing, so it is skipped.
func verifyRoundTrip(doc document.Document, jsonData, original []byte) error {
	if doc.Kind() == format.KindText {
		slog.Debug("verify skipped: text variant does not round trip comments")

		return nil
	}

	reparsed, err := document.Unmarshal(jsonData)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	rebuilt, err := codec.Encode(reparsed)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if hash.Sum64(rebuilt) != hash.Sum64(original) {
		return fmt.Errorf("verify: round trip digest mismatch (original %s, rebuilt %s)",
			hash.Hex(original), hash.Hex(rebuilt))
	}
	slog.Debug("verify passed", "digest", hash.Hex(original))

	return nil
}

func init() {
	toJSONCmd.Flags().Bool("allow-binary", false,
		"Strip NUL bytes and retry structured parsing before falling back to raw")
	toJSONCmd.Flags().Bool("verify", false,
		"Re-encode the JSON and fail unless it reproduces the input byte-exact")
	toJSONCmd.Flags().Int("preview-min-run", encoding.DefaultMinPrintableRun,
		"Minimum printable run length extracted into the raw fallback preview")
	toJSONCmd.Flags().StringP("compress", "z", "none",
		"Compress the JSON output: none, gzip, zstd, s2 or lz4")
	rootCmd.AddCommand(toJSONCmd)
}
