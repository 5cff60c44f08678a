package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/namehash/cidutil"
	"xdao.co/namehash/digest"
	"xdao.co/namehash/terminal"
)

const namePrompt = "Enter your name: "

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		return cmdInteractive(in, out, errOut)
	}

	switch args[0] {
	case "hash":
		return cmdHash(args[1:], in, out, errOut)
	case "cid":
		return cmdCID(args[1:], in, out, errOut)
	case "vectors":
		return cmdVectors(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "namehash: SHA3-256 name hasher")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  namehash")
	fmt.Fprintln(w, "  namehash hash [--alg <sha3-256|sha256|sha512|shake256>] [--length <n>] <text|->")
	fmt.Fprintln(w, "  namehash cid <text|->")
	fmt.Fprintln(w, "  namehash vectors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - with no command, reads one line from stdin and prints it and its sha3-256 digest")
	fmt.Fprintln(w, "  - digests are lowercase hex; sha3-256 digests are 64 chars")
	fmt.Fprintln(w, "  - --length sets shake256 output bytes (default 32)")
	fmt.Fprintln(w, "  - 'hash -' and 'cid -' hash all of stdin instead of an argument")
	fmt.Fprintln(w, "  - cid prints a CIDv1 (raw + sha3-256) for the input bytes")
	fmt.Fprintln(w, "  - vectors prints the FIPS 202 known-answer table used by the tests")
}

// cmdInteractive is the bare-invocation pipeline: prompt, read one line,
// clear the terminal, print the name and its digest.
//
// The prompt goes to errOut so that out carries exactly two lines: the name
// as entered, then the digest. The clear is a no-op when out is not an
// interactive terminal.
func cmdInteractive(in io.Reader, out io.Writer, errOut io.Writer) int {
	terminal.Prompt(errOut, namePrompt)
	name, err := terminal.ReadLine(bufio.NewReader(in))
	if err != nil {
		fmt.Fprintf(errOut, "read name: %v\n", err)
		return 1
	}
	terminal.Clear(out)
	fmt.Fprintln(out, name)
	fmt.Fprintln(out, digest.Hex(name))
	return 0
}

func cmdHash(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var alg string
	var length int
	fs.StringVar(&alg, "alg", string(digest.Default), "Digest algorithm: sha3-256, sha256, sha512, shake256")
	fs.IntVar(&length, "length", 0, "Output length in bytes (shake256 only)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: namehash hash [--alg <a>] [--length <n>] <text|->")
		return 2
	}
	a := digest.Algorithm(alg)
	if length != 0 && a != digest.SHAKE256 {
		fmt.Fprintln(errOut, "--length is only valid with --alg shake256")
		return 2
	}

	data, code := inputBytes(fs.Arg(0), in, errOut)
	if code != 0 {
		return code
	}

	var sum []byte
	var err error
	if a == digest.SHAKE256 && length != 0 {
		sum, err = digest.XOF(data, length)
	} else {
		sum, err = digest.SumWith(a, data)
	}
	if err != nil {
		fmt.Fprintf(errOut, "hash: %v\n", err)
		if digest.IsKind(err, digest.KindAlgorithm) || digest.IsKind(err, digest.KindLength) {
			return 2
		}
		return 1
	}
	_, _ = fmt.Fprintln(out, hex.EncodeToString(sum))
	return 0
}

func cmdCID(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: namehash cid <text|->")
		return 2
	}
	data, code := inputBytes(fs.Arg(0), in, errOut)
	if code != 0 {
		return code
	}
	c, err := cidutil.CIDv1RawSHA3CID(data)
	if err != nil {
		fmt.Fprintf(errOut, "cid: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, c.String())
	return 0
}

// inputBytes resolves a <text|-> argument: "-" reads all of in, anything
// else is taken literally as UTF-8 bytes.
func inputBytes(arg string, in io.Reader, errOut io.Writer) ([]byte, int) {
	if arg != "-" {
		return []byte(arg), 0
	}
	b, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(errOut, "read stdin: %v\n", err)
		return nil, 1
	}
	return b, 0
}
