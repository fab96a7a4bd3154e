package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/feedlab/postdex"
)

var HelpAdd = errors.New("add id|timestamp|content|author|views")

func (repl *REPL) CommandAdd(line string) (err error) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return HelpAdd
	}
	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return errors.Wrap(HelpAdd, "bad id")
	}
	views, err := strconv.ParseInt(strings.TrimSpace(parts[4]), 10, 64)
	if err != nil {
		return errors.Wrap(HelpAdd, "bad view count")
	}
	rec, err := repl.Catalog.Add(id, strings.TrimSpace(parts[1]), parts[2], parts[3], views)
	if err != nil {
		return err
	}
	fmt.Printf("added %s\n", rec.String())
	return nil
}

var HelpGet = errors.New("get timestamp")

func (repl *REPL) CommandGet(line string) (err error) {
	if line == "" {
		return HelpGet
	}
	rec, ok := repl.Catalog.FindByTimestamp(line)
	if !ok {
		fmt.Printf("post not found\n")
		return nil
	}
	printRecord(rec)
	return nil
}

var HelpRange = errors.New("range start|end")

func (repl *REPL) CommandRange(line string) (err error) {
	parts := strings.Split(line, "|")
	if len(parts) != 2 {
		return HelpRange
	}
	recs := repl.Catalog.FindInRange(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	if len(recs) == 0 {
		fmt.Printf("no posts in range\n")
		return nil
	}
	for _, rec := range recs {
		printRecord(rec)
	}
	return nil
}

func (repl *REPL) CommandTop(line string) (err error) {
	rec, ok := repl.Catalog.MostViewed()
	if !ok {
		fmt.Printf("no posts available\n")
		return nil
	}
	printRecord(rec)
	return nil
}

func (repl *REPL) CommandPop(line string) (err error) {
	rec, err := repl.Catalog.ExtractMostViewed()
	if err != nil {
		return err
	}
	printRecord(rec)
	return nil
}

func (repl *REPL) CommandList(line string) (err error) {
	for _, rec := range repl.Catalog.ListByViews() {
		fmt.Printf("%s: %s, views: %d\n", rec.Author, rec.Content, rec.Views)
	}
	return nil
}

func (repl *REPL) CommandStats(line string) (err error) {
	fmt.Printf("records: %d\n", repl.Catalog.Len())
	return nil
}

var demoPosts = []struct {
	id      int64
	ts      string
	content string
	author  string
	views   int64
}{
	{1, "2024-04-13 01:00:00", "Check out this Sunset photo!", "Asma", 100},
	{2, "2024-04-14 11:00:00", "New Youtube Video", "Brook", 15000},
	{3, "2024-04-14 12:30:00", "New song released", "Taylor", 22000},
	{4, "2024-04-15 13:00:00", "Photo dump from my Paris Trip", "Alice", 1200},
}

func (repl *REPL) CommandDemo(line string) (err error) {
	for _, p := range demoPosts {
		if _, err = repl.Catalog.Add(p.id, p.ts, p.content, p.author, p.views); err != nil {
			return errors.Wrapf(err, "add %d", p.id)
		}
	}
	fmt.Printf("%d demo posts loaded\n", len(demoPosts))
	return nil
}

func (repl *REPL) CommandHelp(line string) (err error) {
	fmt.Print(
		"add id|timestamp|content|author|views\n" +
			"get timestamp\n" +
			"range start|end\n" +
			"top            peek the most viewed post\n" +
			"pop            extract the most viewed post\n" +
			"list           all posts by descending views\n" +
			"stats          record count\n" +
			"demo           load the sample dataset\n" +
			"exit\n")
	return nil
}

func printRecord(rec *postdex.Record) {
	fmt.Printf("id: %d, time: %s, post: %s, poster: %s, views: %d\n",
		rec.Id, rec.Timestamp, rec.Content, rec.Author, rec.Views)
}
