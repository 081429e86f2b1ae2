package env_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/helper/env"
)

const variable = "ESTATEPORTAL_ENV_TEST"

func setVariable(value string) {
	Expect(os.Setenv(variable, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, variable)
}

var _ = Describe("env", func() {
	DescribeTable("GetDuration",
		func(raw string, expected time.Duration) {
			// ARRANGE
			setVariable(raw)

			// ACT & ASSERT
			Expect(env.GetDuration(variable, 7*time.Second)).To(Equal(expected))
		},
		Entry("go duration", "1.5s", 1500*time.Millisecond),
		Entry("minutes", "30m", 30*time.Minute),
		Entry("plain seconds", "45", 45*time.Second),
		Entry("garbage falls back to the default", "soon", 7*time.Second),
		Entry("empty falls back to the default", "", 7*time.Second),
	)

	It("should return zero without a default", func() {
		setVariable("")
		Expect(env.GetDuration(variable)).To(BeZero())
	})

	DescribeTable("GetBool",
		func(raw string, defaultValue bool, expected bool) {
			// ARRANGE
			setVariable(raw)

			// ACT & ASSERT
			Expect(env.GetBool(variable, defaultValue)).To(Equal(expected))
		},
		Entry("true", "true", false, true),
		Entry("one", "1", false, true),
		Entry("false", "false", true, false),
		Entry("garbage falls back to the default", "yes please", true, true),
		Entry("empty falls back to the default", "", false, false),
	)

	It("should read strings, ints and floats with defaults", func() {
		setVariable("12")
		Expect(env.GetString(variable, "x")).To(Equal("12"))
		Expect(env.GetInt(variable, 3)).To(Equal(12))
		Expect(env.GetFloat(variable, 1.5)).To(Equal(12.0))

		setVariable("")
		Expect(env.GetString(variable, "x")).To(Equal("x"))
		Expect(env.GetInt(variable, 3)).To(Equal(3))
	})

	It("should panic when a required variable is missing", func() {
		setVariable("")
		Expect(func() { env.MustGetString(variable) }).To(Panic())
	})
})
