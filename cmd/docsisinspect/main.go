// Command docsisinspect is a thin example front-end over the docsis core:
// it reads a binary DOCSIS config file and prints its enriched form as
// JSON. It is not part of the core API surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tlvkit/docsis/bridge"
	"github.com/tlvkit/docsis/enrich"
	"github.com/tlvkit/docsis/mic"
	"github.com/tlvkit/docsis/tlv"
)

func main() {
	path := flag.String("file", "", "path to a binary DOCSIS config file")
	secretHex := flag.String("secret", "", "shared MIC secret, raw text")
	warn := flag.Bool("warn", false, "warn instead of failing on an invalid MIC")
	flag.Parse()

	logger := logrus.New()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: docsisinspect -file <path> [-secret <text>] [-warn]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		logger.Fatalf("read %s: %v", *path, err)
	}

	nodes, _, err := tlv.Decode(raw, 0)
	if err != nil {
		logger.Fatalf("decode: %v", err)
	}

	if *secretHex != "" {
		opts := []mic.Option{}
		if *warn {
			opts = append(opts, mic.WithMode(mic.ModeWarn))
		}
		secret := mic.Secret(*secretHex)
		if result, err := mic.ValidateCM(nodes, secret, opts...); err != nil {
			logger.Fatalf("CM MIC: %v", err)
		} else {
			logger.Infof("CM MIC: %s", result.Status)
		}
		if result, err := mic.ValidateCMTS(nodes, secret, opts...); err != nil {
			logger.Fatalf("CMTS MIC: %v", err)
		} else {
			logger.Infof("CMTS MIC: %s", result.Status)
		}
	}

	enriched := enrich.Enrich(nodes)
	out, err := bridge.EmitJSON(enriched)
	if err != nil {
		logger.Fatalf("emit: %v", err)
	}
	fmt.Println(string(out))
}
