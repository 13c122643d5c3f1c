// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command btcaddr is a small CLI front-end exercising the address
// codec end to end: decoding a hex script into its textual address(es),
// parsing a textual address back into its hex script, and checking
// whether a textual address is accepted at all.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/btcaddr/codec/btcutil"
	"github.com/btcaddr/codec/btcutil/er"
	"github.com/btcaddr/codec/internal/addrlog"
)

func main() {
	os.Exit(mainInt())
}

func extract(params []string) er.R {
	if len(params) != 1 {
		return er.New("extract requires exactly one argument: a hex-encoded output script")
	}
	script, errr := hex.DecodeString(params[0])
	if errr != nil {
		return er.Errorf("invalid hex script: %v", errr)
	}

	netParams, ok := paramsForNet(opts.Net)
	if !ok {
		return er.Errorf("unrecognized network %q", opts.Net)
	}

	addrs := btcutil.ExtractDestinations(script, netParams)
	if len(addrs) == 0 {
		addrlog.Log.Debugf("script classified with no addresses: %x", script)
		fmt.Println("(no addresses)")
		return nil
	}
	for _, a := range addrs {
		fmt.Println(a)
	}
	return nil
}

func decode(params []string) er.R {
	if len(params) != 1 {
		return er.New("decode requires exactly one argument: a textual address")
	}

	netParams, ok := paramsForNet(opts.Net)
	if !ok {
		return er.Errorf("unrecognized network %q", opts.Net)
	}

	script, err := btcutil.DecodeDestination(params[0], netParams)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(script))
	return nil
}

func isvalid(params []string) er.R {
	if len(params) != 1 {
		return er.New("isvalid requires exactly one argument: a textual address")
	}

	netParams, ok := paramsForNet(opts.Net)
	if !ok {
		return er.Errorf("unrecognized network %q", opts.Net)
	}

	if btcutil.IsValid(params[0], netParams) {
		fmt.Println("true")
	} else {
		fmt.Println("false")
	}
	return nil
}

var ops = map[string]func(params []string) er.R{
	"extract": extract,
	"decode":  decode,
	"isvalid": isvalid,
}

func mainInt() int {
	parser := flags.NewParser(&opts, flags.Default)
	args, errr := parser.Parse()
	if errr != nil {
		return 1
	}

	if err := addrlog.SetLevel(opts.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if len(args) < 1 || ops[args[0]] == nil {
		fmt.Println("Usage: btcaddr [--net mainnet|testnet|signet|regtest] COMMAND ARG")
		fmt.Println("    extract <hex-script>   # list the address(es) an output script pays to")
		fmt.Println("    decode <address>       # parse a textual address back into a hex output script")
		fmt.Println("    isvalid <address>      # report whether an address is accepted at all")
		names := make([]string, 0, len(ops))
		for name := range ops {
			names = append(names, name)
		}
		addrlog.Log.Debugf("known commands: %s", strings.Join(names, ", "))
		return 1
	}

	if err := ops[args[0]](args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
