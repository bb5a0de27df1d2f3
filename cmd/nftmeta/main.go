// nftmeta decodes OpenSea-style token metadata JSON, optionally validates it,
// and re-emits it in normalized form.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	nftModels "github.com/wanderers-nft/nft-metadata/core/model"
)

var (
	runValidate = flag.Bool("validate", false, "run semantic validation after decoding")
	pretty      = flag.Bool("pretty", false, "indent the normalized output")
)

func main() {
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		// no arguments: read a single document from stdin
		files = []string{"-"}
	}

	for _, name := range files {
		if err := normalize(name); err != nil {
			logx.Errorf("%s: %s", name, err.Error())
			os.Exit(1)
		}
	}
}

func normalize(name string) error {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	meta, err := nftModels.Parse(data)
	if err != nil {
		return err
	}
	if *runValidate {
		if err := meta.Validate(); err != nil {
			return err
		}
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(meta, "", "  ")
	} else {
		out, err = meta.JSON()
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
