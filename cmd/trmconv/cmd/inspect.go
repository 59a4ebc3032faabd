package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Krymelte/trm/codec"
	"github.com/Krymelte/trm/compress"
	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/format"
	"github.com/Krymelte/trm/internal/hash"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Report a file's detected variant and content digest",
	Long: `Report which TRM variant a file is, its size, entry or pair counts,
and its xxHash64 content digest. Compressed JSON artifacts are unpacked
before inspection. Never fails on unrecognized content; such files report
as the raw fallback.

Example:
  trmconv inspect stages.trm`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("file:    %s\n", args[0])
		fmt.Printf("size:    %d bytes\n", len(data))
		fmt.Printf("xxhash:  %s\n", hash.Hex(data))

		if compression := compress.Detect(data); compression != format.CompressionNone {
			cc, err := compress.GetCodec(compression)
			if err != nil {
				return err
			}
			if data, err = cc.Decompress(data); err != nil {
				return err
			}
			fmt.Printf("packed:  %s (%d bytes unpacked)\n", compression, len(data))
			slog.Debug("decompressed for inspection", "type", compression.String())
		}

		doc, err := codec.Decode(data)
		if err != nil {
			return err
		}

		fmt.Printf("variant: %s\n", doc.Kind())
		switch d := doc.(type) {
		case *document.BinaryDocument:
			fmt.Printf("entries: %d\n", d.EntryCount)
			for _, e := range d.Entries {
				fmt.Printf("  %-32s count=%d pass_value=%d\n", e.Name, e.Count, e.PassValue)
			}
		case *document.KeyValueDocument:
			fmt.Printf("pairs:   %d\n", d.Len())
		case *document.RawDocument:
			fmt.Printf("preview: %d printable runs\n", len(d.PrintablePreview))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
