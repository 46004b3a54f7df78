// Command stemword stems words from its arguments or from standard
// input, one word per line. It is the manual smoke test for the stemmer
// rule tables:
//
//	stemword -lang english running generalization ponies
//	cat wordlist.txt | stemword -lang danish
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vinay221097/texsa/stemmer"
)

func main() {
	lang := flag.String("lang", "english", "language rule table to apply")
	flag.Parse()

	s, err := stemmer.New(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stemword: %v (supported: %s)\n",
			err, strings.Join(stemmer.Languages(), ", "))
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if flag.NArg() > 0 {
		for _, word := range flag.Args() {
			fmt.Fprintf(out, "%s\t%s\n", word, s.Stem(word))
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", word, s.Stem(word))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "stemword: read stdin: %v\n", err)
		os.Exit(1)
	}
}
