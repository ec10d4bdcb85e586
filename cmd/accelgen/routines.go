// Copyright 2025 go-accelerate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

// The routine descriptor tables. One entry per wrapped Accelerate symbol;
// the parameter lists follow the Fortran reference interfaces. Adding a
// routine here and re-running go generate in the target package is all it
// takes to wire a new symbol pair.

type kind int

const (
	kindFlag     kind = iota // CHARACTER*1 flag; Go byte, C char*
	kindInt                  // scalar integer; Go int32, C lp_int*
	kindIntOut               // integer output; Go *int32, C lp_int*
	kindIntSlice             // integer array; Go []int32
	kindFloat                // scalar float32 (by reference on the C side)
	kindDouble               // scalar float64
	kindComplexF             // scalar complex64
	kindComplexD             // scalar complex128
	kindFloatSlice
	kindDoubleSlice
	kindComplexFSlice
	kindComplexDSlice
)

type ret int

const (
	// retInfo appends a trailing lp_int *info parameter on the C side and
	// surfaces it as the Go return value.
	retInfo ret = iota
	retVoid
	retFloat
	retDouble
	// retComplexF/retComplexD use the Fortran hidden-result-pointer
	// convention: an lp_complex* ret leads the C parameter list and is
	// surfaced as the Go return value.
	retComplexF
	retComplexD
)

type param struct {
	name string
	kind kind
}

type routine struct {
	name   string
	params []param
	ret    ret
}

// lapackRoutines covers the LAPACK driver/computational routines used by
// dense eigen, least-squares, QR, LU, Cholesky and SVD solvers. Each inner
// slice is a family; families are separated by a blank line in the emitted
// prototype block.
var lapackRoutines = [][]routine{{
	{name: "sgeev", ret: retInfo, params: []param{
		{"jobvl", kindFlag}, {"jobvr", kindFlag}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"wr", kindFloatSlice}, {"wi", kindFloatSlice},
		{"vl", kindFloatSlice}, {"ldvl", kindInt},
		{"vr", kindFloatSlice}, {"ldvr", kindInt},
		{"work", kindFloatSlice}, {"lwork", kindInt},
	}},
	{name: "dgeev", ret: retInfo, params: []param{
		{"jobvl", kindFlag}, {"jobvr", kindFlag}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"wr", kindDoubleSlice}, {"wi", kindDoubleSlice},
		{"vl", kindDoubleSlice}, {"ldvl", kindInt},
		{"vr", kindDoubleSlice}, {"ldvr", kindInt},
		{"work", kindDoubleSlice}, {"lwork", kindInt},
	}},
	{name: "cgeev", ret: retInfo, params: []param{
		{"jobvl", kindFlag}, {"jobvr", kindFlag}, {"n", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"w", kindComplexFSlice},
		{"vl", kindComplexFSlice}, {"ldvl", kindInt},
		{"vr", kindComplexFSlice}, {"ldvr", kindInt},
		{"work", kindComplexFSlice}, {"lwork", kindInt},
		{"rwork", kindFloatSlice},
	}},
	{name: "zgeev", ret: retInfo, params: []param{
		{"jobvl", kindFlag}, {"jobvr", kindFlag}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"w", kindComplexDSlice},
		{"vl", kindComplexDSlice}, {"ldvl", kindInt},
		{"vr", kindComplexDSlice}, {"ldvr", kindInt},
		{"work", kindComplexDSlice}, {"lwork", kindInt},
		{"rwork", kindDoubleSlice},
	}},
}, {
	{name: "ssyevd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"uplo", kindFlag}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"w", kindFloatSlice}, {"work", kindFloatSlice}, {"lwork", kindInt},
		{"iwork", kindIntSlice}, {"liwork", kindInt},
	}},
	{name: "dsyevd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"uplo", kindFlag}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"w", kindDoubleSlice}, {"work", kindDoubleSlice}, {"lwork", kindInt},
		{"iwork", kindIntSlice}, {"liwork", kindInt},
	}},
	{name: "cheevd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"uplo", kindFlag}, {"n", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"w", kindFloatSlice},
		{"work", kindComplexFSlice}, {"lwork", kindInt},
		{"rwork", kindFloatSlice}, {"lrwork", kindInt},
		{"iwork", kindIntSlice}, {"liwork", kindInt},
	}},
	{name: "zheevd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"uplo", kindFlag}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"w", kindDoubleSlice},
		{"work", kindComplexDSlice}, {"lwork", kindInt},
		{"rwork", kindDoubleSlice}, {"lrwork", kindInt},
		{"iwork", kindIntSlice}, {"liwork", kindInt},
	}},
}, {
	{name: "sgelsd", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"b", kindFloatSlice}, {"ldb", kindInt},
		{"s", kindFloatSlice}, {"rcond", kindFloat}, {"rank", kindIntOut},
		{"work", kindFloatSlice}, {"lwork", kindInt},
		{"iwork", kindIntSlice},
	}},
	{name: "dgelsd", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"b", kindDoubleSlice}, {"ldb", kindInt},
		{"s", kindDoubleSlice}, {"rcond", kindDouble}, {"rank", kindIntOut},
		{"work", kindDoubleSlice}, {"lwork", kindInt},
		{"iwork", kindIntSlice},
	}},
	{name: "cgelsd", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"b", kindComplexFSlice}, {"ldb", kindInt},
		{"s", kindFloatSlice}, {"rcond", kindFloat}, {"rank", kindIntOut},
		{"work", kindComplexFSlice}, {"lwork", kindInt},
		{"rwork", kindFloatSlice}, {"iwork", kindIntSlice},
	}},
	{name: "zgelsd", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"b", kindComplexDSlice}, {"ldb", kindInt},
		{"s", kindDoubleSlice}, {"rcond", kindDouble}, {"rank", kindIntOut},
		{"work", kindComplexDSlice}, {"lwork", kindInt},
		{"rwork", kindDoubleSlice}, {"iwork", kindIntSlice},
	}},
}, {
	{name: "dgeqrf", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"tau", kindDoubleSlice}, {"work", kindDoubleSlice}, {"lwork", kindInt},
	}},
	{name: "zgeqrf", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"tau", kindComplexDSlice}, {"work", kindComplexDSlice}, {"lwork", kindInt},
	}},
	{name: "dorgqr", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt}, {"k", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"tau", kindDoubleSlice}, {"work", kindDoubleSlice}, {"lwork", kindInt},
	}},
	{name: "zungqr", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt}, {"k", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"tau", kindComplexDSlice}, {"work", kindComplexDSlice}, {"lwork", kindInt},
	}},
}, {
	{name: "sgesv", ret: retInfo, params: []param{
		{"n", kindInt}, {"nrhs", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
		{"b", kindFloatSlice}, {"ldb", kindInt},
	}},
	{name: "dgesv", ret: retInfo, params: []param{
		{"n", kindInt}, {"nrhs", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
		{"b", kindDoubleSlice}, {"ldb", kindInt},
	}},
	{name: "cgesv", ret: retInfo, params: []param{
		{"n", kindInt}, {"nrhs", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
		{"b", kindComplexFSlice}, {"ldb", kindInt},
	}},
	{name: "zgesv", ret: retInfo, params: []param{
		{"n", kindInt}, {"nrhs", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
		{"b", kindComplexDSlice}, {"ldb", kindInt},
	}},
}, {
	{name: "sgetrf", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
	}},
	{name: "dgetrf", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
	}},
	{name: "cgetrf", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
	}},
	{name: "zgetrf", ret: retInfo, params: []param{
		{"m", kindInt}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"ipiv", kindIntSlice},
	}},
}, {
	{name: "spotrf", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
	}},
	{name: "dpotrf", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
	}},
	{name: "cpotrf", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
	}},
	{name: "zpotrf", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
	}},
}, {
	{name: "spotrs", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"b", kindFloatSlice}, {"ldb", kindInt},
	}},
	{name: "dpotrs", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"b", kindDoubleSlice}, {"ldb", kindInt},
	}},
	{name: "cpotrs", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"b", kindComplexFSlice}, {"ldb", kindInt},
	}},
	{name: "zpotrs", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt}, {"nrhs", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"b", kindComplexDSlice}, {"ldb", kindInt},
	}},
}, {
	{name: "spotri", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
	}},
	{name: "dpotri", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
	}},
	{name: "cpotri", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
	}},
	{name: "zpotri", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
	}},
}, {
	{name: "sgesdd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"m", kindInt}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"s", kindFloatSlice},
		{"u", kindFloatSlice}, {"ldu", kindInt},
		{"vt", kindFloatSlice}, {"ldvt", kindInt},
		{"work", kindFloatSlice}, {"lwork", kindInt},
		{"iwork", kindIntSlice},
	}},
	{name: "dgesdd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"m", kindInt}, {"n", kindInt},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"s", kindDoubleSlice},
		{"u", kindDoubleSlice}, {"ldu", kindInt},
		{"vt", kindDoubleSlice}, {"ldvt", kindInt},
		{"work", kindDoubleSlice}, {"lwork", kindInt},
		{"iwork", kindIntSlice},
	}},
	{name: "cgesdd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"m", kindInt}, {"n", kindInt},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"s", kindFloatSlice},
		{"u", kindComplexFSlice}, {"ldu", kindInt},
		{"vt", kindComplexFSlice}, {"ldvt", kindInt},
		{"work", kindComplexFSlice}, {"lwork", kindInt},
		{"rwork", kindFloatSlice}, {"iwork", kindIntSlice},
	}},
	{name: "zgesdd", ret: retInfo, params: []param{
		{"jobz", kindFlag}, {"m", kindInt}, {"n", kindInt},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"s", kindDoubleSlice},
		{"u", kindComplexDSlice}, {"ldu", kindInt},
		{"vt", kindComplexDSlice}, {"ldvt", kindInt},
		{"work", kindComplexDSlice}, {"lwork", kindInt},
		{"rwork", kindDoubleSlice}, {"iwork", kindIntSlice},
	}},
}}

// blasRoutines covers the level-1 and level-3 BLAS routines.
var blasRoutines = [][]routine{{
	{name: "scopy", ret: retVoid, params: []param{
		{"n", kindInt},
		{"x", kindFloatSlice}, {"incx", kindInt},
		{"y", kindFloatSlice}, {"incy", kindInt},
	}},
	{name: "dcopy", ret: retVoid, params: []param{
		{"n", kindInt},
		{"x", kindDoubleSlice}, {"incx", kindInt},
		{"y", kindDoubleSlice}, {"incy", kindInt},
	}},
	{name: "ccopy", ret: retVoid, params: []param{
		{"n", kindInt},
		{"x", kindComplexFSlice}, {"incx", kindInt},
		{"y", kindComplexFSlice}, {"incy", kindInt},
	}},
	{name: "zcopy", ret: retVoid, params: []param{
		{"n", kindInt},
		{"x", kindComplexDSlice}, {"incx", kindInt},
		{"y", kindComplexDSlice}, {"incy", kindInt},
	}},
}, {
	{name: "sdot", ret: retFloat, params: []param{
		{"n", kindInt},
		{"x", kindFloatSlice}, {"incx", kindInt},
		{"y", kindFloatSlice}, {"incy", kindInt},
	}},
	{name: "ddot", ret: retDouble, params: []param{
		{"n", kindInt},
		{"x", kindDoubleSlice}, {"incx", kindInt},
		{"y", kindDoubleSlice}, {"incy", kindInt},
	}},
}, {
	{name: "cdotu", ret: retComplexF, params: []param{
		{"n", kindInt},
		{"x", kindComplexFSlice}, {"incx", kindInt},
		{"y", kindComplexFSlice}, {"incy", kindInt},
	}},
	{name: "zdotu", ret: retComplexD, params: []param{
		{"n", kindInt},
		{"x", kindComplexDSlice}, {"incx", kindInt},
		{"y", kindComplexDSlice}, {"incy", kindInt},
	}},
	{name: "cdotc", ret: retComplexF, params: []param{
		{"n", kindInt},
		{"x", kindComplexFSlice}, {"incx", kindInt},
		{"y", kindComplexFSlice}, {"incy", kindInt},
	}},
	{name: "zdotc", ret: retComplexD, params: []param{
		{"n", kindInt},
		{"x", kindComplexDSlice}, {"incx", kindInt},
		{"y", kindComplexDSlice}, {"incy", kindInt},
	}},
}, {
	{name: "sgemm", ret: retVoid, params: []param{
		{"transa", kindFlag}, {"transb", kindFlag},
		{"m", kindInt}, {"n", kindInt}, {"k", kindInt},
		{"alpha", kindFloat},
		{"a", kindFloatSlice}, {"lda", kindInt},
		{"b", kindFloatSlice}, {"ldb", kindInt},
		{"beta", kindFloat},
		{"c", kindFloatSlice}, {"ldc", kindInt},
	}},
	{name: "dgemm", ret: retVoid, params: []param{
		{"transa", kindFlag}, {"transb", kindFlag},
		{"m", kindInt}, {"n", kindInt}, {"k", kindInt},
		{"alpha", kindDouble},
		{"a", kindDoubleSlice}, {"lda", kindInt},
		{"b", kindDoubleSlice}, {"ldb", kindInt},
		{"beta", kindDouble},
		{"c", kindDoubleSlice}, {"ldc", kindInt},
	}},
	{name: "cgemm", ret: retVoid, params: []param{
		{"transa", kindFlag}, {"transb", kindFlag},
		{"m", kindInt}, {"n", kindInt}, {"k", kindInt},
		{"alpha", kindComplexF},
		{"a", kindComplexFSlice}, {"lda", kindInt},
		{"b", kindComplexFSlice}, {"ldb", kindInt},
		{"beta", kindComplexF},
		{"c", kindComplexFSlice}, {"ldc", kindInt},
	}},
	{name: "zgemm", ret: retVoid, params: []param{
		{"transa", kindFlag}, {"transb", kindFlag},
		{"m", kindInt}, {"n", kindInt}, {"k", kindInt},
		{"alpha", kindComplexD},
		{"a", kindComplexDSlice}, {"lda", kindInt},
		{"b", kindComplexDSlice}, {"ldb", kindInt},
		{"beta", kindComplexD},
		{"c", kindComplexDSlice}, {"ldc", kindInt},
	}},
}}
