// Command threadlens collects Reddit posts into a local archive and
// serves ranked search over them via MCP.
//
// Fetch posts into the store:
//
//	threadlens -db posts.db -fetch golang,programming -limit 200
//
// Serve the archive over stdio:
//
//	threadlens -db posts.db
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/threadlens/threadlens/ingest"
	"github.com/threadlens/threadlens/search"
	"github.com/threadlens/threadlens/server"
	"github.com/threadlens/threadlens/store"
)

func main() {
	var (
		dbPath    = flag.String("db", "threadlens.db", "path to the post database")
		fetch     = flag.String("fetch", "", "comma-separated subreddits to fetch before serving")
		limit     = flag.Int("limit", 100, "posts to fetch per subreddit")
		userAgent = flag.String("user-agent", "", "override the Reddit User-Agent")
		fetchOnly = flag.Bool("fetch-only", false, "fetch and exit without serving")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("threadlens: ")

	posts, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer posts.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *fetch != "" {
		if err := fetchSubreddits(ctx, posts, *fetch, *limit, *userAgent); err != nil {
			log.Fatalf("fetch: %v", err)
		}
	}
	if *fetchOnly {
		return
	}

	svc, err := search.New(search.Options{})
	if err != nil {
		log.Fatalf("create service: %v", err)
	}

	stored, err := posts.LoadPosts()
	if err != nil {
		log.Fatalf("load posts: %v", err)
	}
	for _, batchErr := range svc.IndexPosts(stored) {
		log.Printf("skipping post: %v", batchErr)
	}
	log.Printf("indexed %d posts", svc.DocCount())

	if err := server.New(svc).Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("server: %v", err)
	}
}

func fetchSubreddits(ctx context.Context, posts *store.PostStore, list string, limit int, userAgent string) error {
	client := ingest.NewClient(ingest.Options{UserAgent: userAgent})

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		fetched, err := client.FetchSubreddit(ctx, name, limit)
		if err != nil {
			return err
		}
		saved, err := posts.SavePosts(fetched)
		if err != nil {
			return err
		}
		log.Printf("r/%s: saved %d posts", name, saved)
	}
	return nil
}
