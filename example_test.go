package numbuf_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/numbuf"
)

// Example demonstrates creating an array, dumping it and loading it back.
func Example() {
	dir, err := os.MkdirTemp("", "numbuf")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	buf, err := numbuf.New(3)
	if err != nil {
		log.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := buf.Set(i, float32(i)+0.5); err != nil {
			log.Fatal(err)
		}
	}

	path := filepath.Join(dir, "out.bin")
	if err := numbuf.Dump(buf, path); err != nil {
		log.Fatal(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("bytes:", fi.Size())

	loaded, err := numbuf.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	v, err := loaded.Get(2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("loaded[2]:", v)

	// Output:
	// bytes: 12
	// loaded[2]: 2.5
}

// Example_sequence demonstrates dumping a sequence without creating a buffer.
func Example_sequence() {
	dir, err := os.MkdirTemp("", "numbuf")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "seq.bin")
	if err := numbuf.Dump([]float64{1.5, 2.5, 3.5}, path); err != nil {
		log.Fatal(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("bytes:", fi.Size())

	// Output:
	// bytes: 12
}
