package latency_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/helper/latency"
)

var _ = Describe("Simulator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should not wait when built with None", func() {
		// ARRANGE
		start := time.Now()

		// ACT
		err := latency.None().Wait(ctx, latency.OpList)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 50*time.Millisecond))
	})

	It("should be safe to call on a nil simulator", func() {
		var simulator *latency.Simulator
		Expect(simulator.Wait(ctx, latency.OpGet)).To(Succeed())
	})

	It("should wait for the configured duration", func() {
		// ARRANGE
		simulator := latency.NewSimulator(map[latency.Op]time.Duration{latency.OpGet: 30 * time.Millisecond})
		start := time.Now()

		// ACT
		err := simulator.Wait(ctx, latency.OpGet)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically(">=", 30*time.Millisecond))
	})

	It("should stop early when the context is cancelled", func() {
		// ARRANGE
		simulator := latency.NewSimulator(map[latency.Op]time.Duration{latency.OpCreate: time.Hour})
		timeout, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		// ACT
		err := simulator.Wait(timeout, latency.OpCreate)

		// ASSERT
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})

	It("should disable delays for a non-positive scale", func() {
		// ARRANGE
		simulator := latency.NewScaledSimulator(0)
		start := time.Now()

		// ACT
		err := simulator.Wait(ctx, latency.OpRegister)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 50*time.Millisecond))
	})

	It("should keep the default profile ordering", func() {
		profile := latency.DefaultProfile()
		Expect(profile[latency.OpRegister]).To(Equal(time.Second))
		Expect(profile[latency.OpSession]).To(BeNumerically("<", profile[latency.OpLogin]))
	})
})
