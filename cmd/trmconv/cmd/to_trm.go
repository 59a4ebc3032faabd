package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/Krymelte/trm/codec"
	"github.com/Krymelte/trm/compress"
	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/format"
)

// toTRMCmd represents the to-trm command
var toTRMCmd = &cobra.Command{
	Use:   "to-trm <input.json> <output.trm>",
	Short: "Convert a JSON file back to TRM",
	Long: `Convert a JSON file back to TRM. The JSON shape selects the output
variant: an "entries" array produces the binary layout, a
"__raw_binary_base64" field restores the wrapped bytes verbatim, and any
other flat object becomes legacy "key = value" text.

Compressed input (gzip, zstd, s2, lz4) is detected and unpacked
transparently, and // or /* */ comments in the JSON are allowed.

Example:
  trmconv to-trm stages.json stages.trm`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		if compression := compress.Detect(data); compression != format.CompressionNone {
			cc, err := compress.GetCodec(compression)
			if err != nil {
				return err
			}
			if data, err = cc.Decompress(data); err != nil {
				return err
			}
			slog.Debug("decompressed input", "type", compression.String(), "bytes", len(data))
		}

		doc, err := document.Unmarshal(jsonc.ToJSON(data))
		if err != nil {
			return err
		}
		slog.Debug("parsed document", "kind", doc.Kind().String())

		out, err := codec.Encode(doc)
		if err != nil {
			return err
		}

		return os.WriteFile(args[1], out, 0o644)
	},
}

func init() {
	rootCmd.AddCommand(toTRMCmd)
}
