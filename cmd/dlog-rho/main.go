// Command dlog-rho solves g^x ≡ h (mod p) with Pollard's rho algorithm,
// sequentially by default or across a worker pool with -parallel.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/kukos-crypto/dlogtoolkit/common"
	"github.com/kukos-crypto/dlogtoolkit/dlog"
)

func usage() {
	fmt.Println("usage: dlog-rho [-parallel] [-workers N] [-v level] g h p")
	fmt.Println("  solves g^x = h (mod p) for prime safe p, printing \"X = ...\" on success")
}

func main() {
	args := os.Args[1:]

	parallel := false
	workers := 0
	logLevel := "error"
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-parallel":
			parallel = true
		case "-workers":
			i++
			if i < len(args) {
				fmt.Sscanf(args[i], "%d", &workers)
			}
		case "-v":
			i++
			if i < len(args) {
				logLevel = args[i]
			}
		default:
			positional = append(positional, args[i])
		}
	}

	if err := common.SetLogLevel(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	if len(positional) < 3 {
		usage()
		os.Exit(0)
	}

	g, ok1 := new(big.Int).SetString(positional[0], 10)
	h, ok2 := new(big.Int).SetString(positional[1], 10)
	p, ok3 := new(big.Int).SetString(positional[2], 10)
	if !ok1 || !ok2 || !ok3 {
		fmt.Println("FAILED")
		os.Exit(1)
	}

	if workers == 0 {
		workers = common.WorkersFromEnv()
	}
	var opts []dlog.Option
	if workers > 0 {
		opts = append(opts, dlog.WithWorkers(workers))
	}

	var x *big.Int
	var err error
	if parallel {
		x, err = dlog.RhoParallel(context.Background(), g, h, p, opts...)
	} else {
		x, err = dlog.Rho(g, h, p)
	}
	if err != nil {
		common.Logger.Errorf("dlog-rho: %v", err)
		fmt.Println("FAILED")
		os.Exit(1)
	}

	check := common.ModInt(p).Exp(g, x)
	if check.Cmp(new(big.Int).Mod(h, p)) != 0 {
		fmt.Println("FAILED")
		os.Exit(1)
	}

	fmt.Printf("X = %s\n", x.String())
	os.Exit(0)
}
