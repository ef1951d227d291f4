// Command factor-ecm peels prime factors off a composite n using Lenstra's
// elliptic-curve method, printing each factor as it is found.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/kukos-crypto/dlogtoolkit/common"
	"github.com/kukos-crypto/dlogtoolkit/ecm"
)

const (
	defaultLimit    = 1 << 16
	defaultAttempts = 64
)

func usage() {
	fmt.Println("usage: factor-ecm [-limit B] [-attempts N] [-v level] n")
	fmt.Println("  peels prime factors off composite n via Lenstra ECM")
}

func main() {
	args := os.Args[1:]

	limit := uint64(defaultLimit)
	attempts := defaultAttempts
	logLevel := "error"
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-limit":
			i++
			if i < len(args) {
				fmt.Sscanf(args[i], "%d", &limit)
			}
		case "-attempts":
			i++
			if i < len(args) {
				fmt.Sscanf(args[i], "%d", &attempts)
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

	if len(positional) < 1 {
		usage()
		os.Exit(0)
	}

	n, ok := new(big.Int).SetString(positional[0], 10)
	if !ok {
		fmt.Println("FAILED")
		os.Exit(1)
	}

	one := big.NewInt(1)
	ctx := context.Background()

	remaining := new(big.Int).Set(n)
	for remaining.Cmp(one) > 0 {
		if remaining.ProbablyPrime(30) {
			fmt.Printf("%s is prime\n", remaining.String())
			break
		}

		f, err := ecm.FactorRetry(ctx, remaining, limit, attempts)
		if err != nil {
			common.Logger.Errorf("factor-ecm: %v", err)
			fmt.Println("FAILED")
			os.Exit(1)
		}

		fmt.Println(f.String())
		remaining.Div(remaining, f)
	}
}
