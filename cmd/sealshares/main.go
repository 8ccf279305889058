// Command sealshares converts a JSON share document into a password-sealed
// envelope or a binary share bundle, both readable by the shamir command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/izouxv/goShamir/config"
	"github.com/izouxv/goShamir/document"
	"github.com/izouxv/goShamir/vault"
)

func main() {
	password := flag.String("password", os.Getenv(config.EnvPassword), "seal with this password")
	bundle := flag.Bool("bundle", false, "write a binary share bundle instead")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: sealshares [-password p | -bundle] <in.json> <out>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 || (*bundle == (*password != "")) {
		flag.Usage()
		os.Exit(1)
	}
	if err := convert(flag.Arg(0), flag.Arg(1), *password, *bundle); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(in, out, password string, bundle bool) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	// Refuse to seal something the shamir command could not read back.
	doc, err := document.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if bundle {
		data, err = document.EncodeBundle(doc)
	} else {
		data, err = vault.Seal(data, password)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o600)
}
