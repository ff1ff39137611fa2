package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/xaionaro-go/chainmap"
	"github.com/xaionaro-go/chainmap/hasher"
)

func checkErr(err error) {
	if err == nil {
		return
	}

	log.Panicf("%v", err)
}

type table interface {
	Set(key chainmap.Key, value string) error
	Print(w io.Writer) error
	Len() int
	Delete()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] <file.csv>\n\nEvery row of the file is \"key,value\".\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	size := flag.Uint64("size", 1024, "the amount of buckets")
	hasherName := flag.String("hasher", "djb2", "the hash function: djb2 or xxhash")
	plain := flag.Bool("plain", false, "print in the bucket order instead of the key order")
	reverse := flag.Bool("reverse", false, "print in the descending key order (ignored with -plain)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	filePath := flag.Arg(0)

	var h hasher.Hasher
	switch *hasherName {
	case "djb2":
		h = hasher.New()
	case "xxhash":
		h = hasher.NewXXHash()
	default:
		log.Printf("unknown hasher %q, using djb2", *hasherName)
		h = hasher.New()
	}

	var (
		m      table
		sorted *chainmap.SortedHashTable
		err    error
	)
	if *plain {
		m, err = chainmap.NewWithArgs(*size, h)
	} else {
		sorted, err = chainmap.NewSortedWithArgs(*size, h)
		m = sorted
	}
	checkErr(err)
	defer m.Delete()

	file, err := os.Open(filePath)
	checkErr(err)
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	rows, err := r.ReadAll()
	checkErr(errors.Wrapf(err, "unable to read %s", filePath))

	for lineNum, row := range rows {
		err := m.Set(row[0], row[1])
		checkErr(errors.Wrapf(err, "row %d", lineNum+1))
	}

	if *reverse && sorted != nil {
		checkErr(sorted.PrintReverse(os.Stdout))
	} else {
		checkErr(m.Print(os.Stdout))
	}
	log.Printf("%d keys loaded into %d buckets", m.Len(), *size)
}
