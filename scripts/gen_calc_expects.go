package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// gen_calc_expects writes an expectCalc* wrapper for every calcTestCase
// expectation builder in a test source file, so that expectations may be
// passed around as values to calcTestCase.apply.
//
// Usage: go run scripts/gen_calc_expects.go -- calc_test.go calc_expects_test.go

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatalln("usage: gen_calc_expects SOURCE_test.go OUTPUT_test.go")
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalln(err)
	}
	out, err := os.Create(args[1])
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = format(ctx, out, generate(args, src))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// format pipes code through gofmt into out.
func format(ctx context.Context, out io.Writer, code []byte) error {
	eg, ctx := errgroup.WithContext(ctx)

	gofmt := exec.CommandContext(ctx, "gofmt")
	gofmt.Stdout = out
	gofmt.Stderr = os.Stderr
	pipe, err := gofmt.StdinPipe()
	if err != nil {
		return err
	}
	if err := gofmt.Start(); err != nil {
		return err
	}

	eg.Go(func() error {
		_, err := pipe.Write(code)
		if cerr := pipe.Close(); err == nil {
			err = cerr
		}
		return err
	})
	eg.Go(func() error {
		if err := gofmt.Wait(); err != nil {
			return fmt.Errorf("gofmt failed: %w", err)
		}
		return nil
	})
	return eg.Wait()
}

var expectMethod = regexp.MustCompile(`(?m)^func \(ct calcTestCase\) expect(\w+)\((.+?)\) calcTestCase`)

func generate(args []string, src []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n// @generated from %s\n\n", args[0])
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_calc_expects.go -- %s\n\n", strings.Join(args, " "))

	for _, match := range expectMethod.FindAllSubmatch(src, -1) {
		name, params := match[1], match[2]
		var argNames [][]byte
		for _, param := range bytes.Split(params, []byte(",")) {
			fields := bytes.Fields(param)
			arg := fields[0]
			if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
				arg = append(arg[:len(arg):len(arg)], "..."...)
			}
			argNames = append(argNames, arg)
		}
		fmt.Fprintf(&buf, "func expectCalc%s(%s) func(calcTestCase) calcTestCase {\n", name, params)
		fmt.Fprintf(&buf, "return func(ct calcTestCase) calcTestCase {\n")
		fmt.Fprintf(&buf, "return ct.expect%s(%s)\n}\n}\n\n", name, bytes.Join(argNames, []byte(", ")))
	}
	return buf.Bytes()
}
