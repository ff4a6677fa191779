package typestring

import "context"

type Context = context.Context

const Score uint64 = 0

type ParallelizableFunc func(ctx Context) error

func Parallel(ctx Context, fns ...ParallelizableFunc) error {
	return nil
}

type TestInterface interface {
	Do(ctx Context, data string) (score int, _ error)
}

type TestStruct struct {
	SimpleA                int
	SimpleB                int
	SimpleC                int
	FieldWithTag           string `json:"tag"`
	FieldWithAnonymousType struct {
		NestedA string
		NestedB string
		NestedC string
	}
	EmptyStructField struct{}
}

type TestEmptyStruct struct{}

type StructTagRegression struct {
	Value int `key:",range=[:}\""`
}
