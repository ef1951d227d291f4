// Command dlog-pohlig solves g^x ≡ h (mod p) with the Pohlig-Hellman
// reduction, given the factorization of p-1 as appended (prime, exponent)
// pairs.
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
	fmt.Println("usage: dlog-pohlig [-v level] g h p f1 e1 [f2 e2 ...]")
	fmt.Println("  f1^e1 * f2^e2 * ... must equal p-1")
}

func main() {
	args := os.Args[1:]

	logLevel := "error"
	var positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "-v" {
			i++
			if i < len(args) {
				logLevel = args[i]
			}
			continue
		}
		positional = append(positional, args[i])
	}

	if err := common.SetLogLevel(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	if len(positional) < 5 || len(positional)%2 != 1 {
		usage()
		os.Exit(0)
	}
	args = positional

	g, ok1 := new(big.Int).SetString(args[0], 10)
	h, ok2 := new(big.Int).SetString(args[1], 10)
	p, ok3 := new(big.Int).SetString(args[2], 10)
	if !ok1 || !ok2 || !ok3 {
		fmt.Println("FAILED")
		os.Exit(1)
	}

	rest := args[3:]
	factors := make([]dlog.Factor, 0, len(rest)/2)
	for i := 0; i+1 < len(rest); i += 2 {
		f, ok1 := new(big.Int).SetString(rest[i], 10)
		e, ok2 := new(big.Int).SetString(rest[i+1], 10)
		if !ok1 || !ok2 {
			fmt.Println("FAILED")
			os.Exit(1)
		}
		factors = append(factors, dlog.Factor{Prime: f, Exponent: e})
	}

	if err := dlog.CheckFactorization(p, factors); err != nil {
		common.Logger.Errorf("dlog-pohlig: %v", err)
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	var opts []dlog.Option
	if workers := common.WorkersFromEnv(); workers > 0 {
		opts = append(opts, dlog.WithWorkers(workers))
	}

	x, err := dlog.Pohlig(context.Background(), g, h, p, factors, opts...)
	if err != nil {
		common.Logger.Errorf("dlog-pohlig: %v", err)
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
