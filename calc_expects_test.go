package main

// @generated from calc_test.go

//go:generate go run scripts/gen_calc_expects.go -- calc_test.go calc_expects_test.go

func expectCalcError(err error) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectError(err)
	}
}

func expectCalcOpErrors(errs ...error) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectOpErrors(errs...)
	}
}

func expectCalcOutput(output string) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectOutput(output)
	}
}

func expectCalcDiag(diags ...string) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectDiag(diags...)
	}
}

func expectCalcStack(ms ...testMatrix) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectStack(ms...)
	}
}

func expectCalcTop(tm testMatrix) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectTop(tm)
	}
}

func expectCalcDump(dump string) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectDump(dump)
	}
}
