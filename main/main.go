package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/transmute"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	words := make([]uint64, 4096)
	for i := range words {
		words[i] = uint64(i) * 0x9E3779B97F4A7C15
	}
	buf := transmute.ToBytesMany(words)
	for i := 0; i < 10000; i++ {
		// Aligned fast path: a view, no allocation.
		if _, err := transmute.ManyPermissive[uint32](buf); err != nil {
			log.Fatal(err)
		}
		// Misaligned slow path: recovered by copy.
		if _, err := transmute.TryCopy(transmute.ManyPermissive[uint32](buf[1:])); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
