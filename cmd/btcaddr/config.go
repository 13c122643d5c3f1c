// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/btcaddr/codec/chaincfg"
)

// opts is the CLI's flag set, matching pktwallet/cmd/wallettool's flat
// struct-of-flags convention rather than a subcommand framework.
var opts = struct {
	Net        string `long:"net" description:"Network: mainnet, testnet, signet, or regtest" default:"mainnet"`
	DebugLevel string `long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical, off" default:"info"`
}{}

// paramsForNet resolves the --net flag to the chaincfg.Params it names.
func paramsForNet(net string) (*chaincfg.Params, bool) {
	switch net {
	case "mainnet":
		return &chaincfg.MainNetParams, true
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, true
	case "signet":
		return &chaincfg.SigNetParams, true
	case "regtest":
		return &chaincfg.RegressionNetParams, true
	default:
		return nil, false
	}
}
