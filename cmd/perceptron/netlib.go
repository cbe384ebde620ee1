//go:build netlib

package main

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// go build -tags netlib でビルドした場合、行列積にcgoのBLASを使う。
func init() {
	blas64.Use(netlib.Implementation{})
}
