package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/antagonisthq/openprovider-go/models"
	"github.com/antagonisthq/openprovider-go/response"
	"github.com/antagonisthq/openprovider-go/xmlutil"
)

var (
	decodeListFlag bool
	decodeDumpFlag bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <reply.xml>",
	Short: "Decode a reply envelope and print what it contains",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
	Example: `  # Decode a captured response
  openprovider decode reply.xml

  # Read the response from stdin and list the result items
  curl ... | openprovider decode --list -`,
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeListFlag, "list", false, "List the items under data.results.array")
	decodeCmd.Flags().BoolVar(&decodeDumpFlag, "dump", false, "Dump the full indented response tree")
}

func runDecode(cmd *cobra.Command, args []string) error {
	var in io.Reader
	if args[0] == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := xmlutil.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	resp, err := response.New(doc)
	if err != nil {
		return fmt.Errorf("decoding envelope: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "code: %d\n", resp.Code())
	fmt.Fprintf(out, "desc: %s\n", resp.Desc())

	data := models.New(resp.Data(), nil)
	fmt.Fprintf(out, "data: %s\n", strings.Join(data.Attributes(), ", "))

	if decodeListFlag {
		items := response.AsModels(resp, func(el *etree.Element) *models.Model {
			return models.New(el, nil)
		})
		for i, item := range items {
			fmt.Fprintf(out, "item %d: %s\n", i, strings.Join(item.Attributes(), ", "))
		}
	}

	if decodeDumpFlag {
		resp.Dump(out)
	}
	return nil
}
