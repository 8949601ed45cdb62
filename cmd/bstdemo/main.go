// Command bstdemo builds a small BSTree and logs what each query returns.
package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/g-m-twostay/go-bst/Trees"
)

var logger = slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
	Level:         slog.LevelDebug,
	TimeFormat:    "15:04:05.000",
	SrcFileMode:   slogcolor.ShortFile,
	SrcFileLength: 16,
	MsgPrefix:     color.HiWhiteString("|"),
	MsgColor:      color.New(color.FgHiWhite),
	MsgLength:     24,
}))

func main() {
	slog.SetDefault(logger)
	Trees.SetLogger(logger)

	t := Trees.New[int, string](8)
	for _, k := range []int{15, 5, 20, 2, 10, 18, 25} {
		t.Insert(k, "v"+strconv.Itoa(k))
	}
	h, _ := t.Height()
	logger.Info("built", "size", t.Size(), "height", h, "bst", t.IsBST())
	logger.Info("in-order", "values", t.InOrder())
	logger.Info("pre-order", "values", t.PreOrder())
	logger.Info("post-order", "values", t.PostOrder())
	logger.Info("bfs", "values", t.BFS())

	if v, err := t.KthLargest(2); err == nil {
		logger.Info("2nd largest", "value", v)
	}
	if _, err := t.KthLargest(100); err != nil {
		logger.Info("100th largest", "error", err)
	}

	if err := t.Remove(15); err != nil {
		logger.Error("remove", "error", err)
		os.Exit(1)
	}
	logger.Info("removed 15", "pre-order", t.PreOrder())

	var nf *Trees.KeyNotFoundError[int]
	if _, err := t.Find(15); errors.As(err, &nf) {
		logger.Info("find after remove", "key", nf.Key, "error", err)
	}
}
