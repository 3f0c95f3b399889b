package main

import (
	"flag"
	"os"

	"github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/state"
	"github.com/embedlang/lkcore/term"
	"github.com/embedlang/lkcore/utils"
)

// main runs a precompiled chunk (the serialized binchunk.Prototype JSON
// format Prototype.Dump produces): this port carries no source-language
// front end of its own, so embedders hand it bytes already produced by a
// Prototype builder rather than a `.lk` source file.
func main() {
	flag.Parse()

	file := flag.Arg(0)
	if file == "" {
		term.Err("no input file")
		os.Exit(2)
	}
	if !utils.Exist(file) {
		term.Err("file does not exist: " + file)
		os.Exit(2)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		term.Err("can't read file: " + err.Error())
		os.Exit(2)
	}

	term.Info("chunk " + file + " md5:" + utils.Md5(data))

	ls := state.New()
	ls.OpenLibs()
	if status := ls.Load(data, file, "bt"); status != api.LK_OK {
		term.Err("load chunk failed: " + ls.ToString(-1))
		os.Exit(1)
	}
	ls.Call(0, api.LK_MULTRET)
}
