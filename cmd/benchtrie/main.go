// Command benchtrie loads or generates a word list, drives the radix set
// through the operations a typical workload exercises, and reports timings
// alongside a correctness check against an independent reference set.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/carlmjohnson/versioninfo"
	uuid "github.com/hashicorp/go-uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	radix "github.com/andrewwang247/radix-tree"
)

func defaultWordListPath() string {
	path, err := xdg.SearchDataFile("benchtrie/words.txt")
	if err != nil {
		return ""
	}
	return path
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "benchtrie",
		Usage:   "benchmark and sanity-check the radix set against a sample workload",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "words",
				Usage:   "path to a newline-delimited word list; falls back to synthetic generation",
				Value:   defaultWordListPath(),
				EnvVars: []string{"BENCHTRIE_WORDS"},
			},
			&cli.IntFlag{
				Name:    "count",
				Usage:   "number of synthetic words to generate when --words is unset",
				Value:   50_000,
				EnvVars: []string{"BENCHTRIE_COUNT"},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "seed for synthetic word generation and sampling",
				Value:   1,
				EnvVars: []string{"BENCHTRIE_SEED"},
			},
			&cli.IntFlag{
				Name:    "samples",
				Usage:   "number of prefixes sampled for FindPrefix/ErasePrefix timing",
				Value:   200,
				EnvVars: []string{"BENCHTRIE_SAMPLES"},
			},
		},
		Action: runBench,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBench(cctx *cli.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	runTag, err := uuid.GenerateUUID()
	if err != nil {
		return fmt.Errorf("generating run tag: %w", err)
	}
	log = log.With("run", runTag)

	wordsPath := cctx.String("words")
	var words []string
	if wordsPath != "" {
		words, err = loadWordsFromFile(wordsPath)
		if err != nil {
			return err
		}
		log.Infow("loaded word list", "path", wordsPath, "count", len(words))
	} else {
		count := cctx.Int("count")
		words = generateWords(count, cctx.Uint64("seed"))
		log.Infow("generated synthetic word list", "count", len(words))
	}

	rng := rand.New(rand.NewSource(cctx.Uint64("seed")))

	var results []timedResult

	set := radix.New()
	start := time.Now()
	for _, w := range words {
		set.Insert(w)
	}
	results = append(results, timedResult{op: "Insert (bulk)", elapsed: time.Since(start), opCount: len(words)})

	ref := buildReference(words)

	var treeKeys []string
	start = time.Now()
	for it := set.Begin(); it.Valid(); it.Next() {
		treeKeys = append(treeKeys, string(it.Key()))
	}
	results = append(results, timedResult{op: "Full iteration", elapsed: time.Since(start), opCount: len(treeKeys)})

	match := sameKeySet(ref, treeKeys)
	log.Infow("reference comparison", "verdict", equalityVerdict(match, len(treeKeys), ref.Len()))

	lenCache, err := lru.New[string, int](256)
	if err != nil {
		return fmt.Errorf("building prefix-length cache: %w", err)
	}
	start = time.Now()
	for b := 0; b < 256; b++ {
		prefix := string([]byte{byte(b)})
		if n, ok := lenCache.Get(prefix); ok {
			_ = n
			continue
		}
		n := set.Len(prefix)
		lenCache.Add(prefix, n)
	}
	results = append(results, timedResult{op: "LenPrefix (0-255)", elapsed: time.Since(start), opCount: 256})

	samples := sampleOf(rng, words, cctx.Int("samples"))

	start = time.Now()
	for _, p := range samples {
		set.FindPrefix(p)
	}
	results = append(results, timedResult{op: "FindPrefix (sample)", elapsed: time.Since(start), opCount: len(samples)})

	start = time.Now()
	for _, p := range samples {
		set.ErasePrefix(p)
	}
	results = append(results, timedResult{op: "ErasePrefix (sample)", elapsed: time.Since(start), opCount: len(samples)})

	fmt.Println(formatReport(results))
	fmt.Println(equalityVerdict(match, len(treeKeys), ref.Len()))
	return nil
}

// sampleOf picks up to n prefixes (the first three bytes of randomly
// chosen words, or the whole word if shorter) for the
// FindPrefix/ErasePrefix timing passes. Words are drawn with replacement,
// so the same prefix can appear more than once.
func sampleOf(rng *rand.Rand, words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w := words[rng.Intn(len(words))]
		if len(w) > 3 {
			w = w[:3]
		}
		out = append(out, w)
	}
	return out
}
