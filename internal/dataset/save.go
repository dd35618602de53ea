package dataset

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

func saveItems(w io.Writer, items <-chan Item) error {
	var bw = bufio.NewWriter(w)
	var count int
	for item := range items {
		if _, err := bw.WriteString(FormatItem(item)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		count++
	}
	log.Println("saveItems",
		"count", count)
	return bw.Flush()
}

// FormatItem renders one dataset line: comma-separated feature indices,
// a space, then the target score.
func FormatItem(item Item) string {
	var sb strings.Builder
	for i, index := range item.Features {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(index))
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(item.Target, 'g', -1, 64))
	return sb.String()
}
