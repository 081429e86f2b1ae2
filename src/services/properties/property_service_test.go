package properties_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/repositories"
	"estateportal/src/services/events"
	"estateportal/src/services/properties"
	"estateportal/src/test_artefacts/comparer"
	"estateportal/src/test_artefacts/stubs"
)

var _ = Describe("PropertyService", func() {
	var (
		ctx             context.Context
		repository      *repositories.MemoryPropertyRepository
		publisher       *events.RecordingPublisher
		propertyService *properties.PropertyService
		fixedNow        time.Time
	)

	newService := func(seed ...entities.Property) {
		repository = repositories.NewMemoryPropertyRepository(seed...)
		publisher = &events.RecordingPublisher{}
		propertyService = properties.NewPropertyService(slog.New(slog.DiscardHandler), repository, latency.None(), publisher).
			WithClock(func() time.Time { return fixedNow })
	}

	BeforeEach(func() {
		ctx = context.Background()
		fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		newService(repositories.SeedProperties()...)
	})

	Context("CreateProperty", func() {
		When("the input is valid", func() {
			It("should generate id and createdAt and return an object equal to a later get", func() {
				// ARRANGE
				input := domain.PropertyInput{
					Title:     "X",
					Price:     500000,
					Bedrooms:  2,
					Bathrooms: 2,
					Type:      "Condo",
					Features:  []string{"Pool"},
				}

				// ACT
				created, err := propertyService.CreateProperty(ctx, input)

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).NotTo(BeEmpty())
				Expect(created.CreatedAt).To(Equal(fixedNow))
				Expect(created.Status).To(Equal(entities.StatusForSale))

				fetched, err := propertyService.GetProperty(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched).To(BeComparableTo(created))
			})

			It("should copy every input field into the new property", func() {
				// ARRANGE
				input := domain.PropertyInput{
					Title:       "Harbour View",
					Description: "Corner unit",
					Price:       750000,
					Type:        "Apartment",
					Status:      entities.StatusForRent,
					Bedrooms:    2,
					Bathrooms:   1.5,
					Address:     "10 Harbour St",
					Features:    []string{"Balcony"},
					Images:      []string{"https://img.example.com/1.jpg"},
					Highlighted: true,
					Agent:       entities.Agent{ID: "agent1", Name: "Sarah"},
				}
				expected := entities.Property{
					Title:       input.Title,
					Description: input.Description,
					Price:       input.Price,
					Type:        input.Type,
					Status:      input.Status,
					Bedrooms:    input.Bedrooms,
					Bathrooms:   input.Bathrooms,
					Address:     input.Address,
					Features:    input.Features,
					Images:      input.Images,
					Highlighted: input.Highlighted,
					Agent:       input.Agent,
				}

				// ACT
				created, err := propertyService.CreateProperty(ctx, input)

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeComparableTo(expected, comparer.IgnoreFieldsFor[entities.Property]("ID", "CreatedAt")))
			})

			It("should append the property at the end of the collection", func() {
				// ARRANGE
				before, _ := propertyService.ListProperties(ctx)

				// ACT
				created, err := propertyService.CreateProperty(ctx, domain.PropertyInput{Title: "Last one", Price: 1})

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				after, _ := propertyService.ListProperties(ctx)
				Expect(after).To(HaveLen(len(before) + 1))
				Expect(after[len(after)-1].ID).To(Equal(created.ID))
			})

			It("should publish a property.created event referencing the new id", func() {
				// ACT
				created, err := propertyService.CreateProperty(ctx, domain.PropertyInput{Title: "Evented", Price: 10})

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				Expect(publisher.Types()).To(Equal([]string{domain.EventPropertyCreated}))
				Expect(publisher.Events()[0].Data.Reference).To(Equal(created.ID))
			})
		})

		When("the input is invalid", func() {
			It("should reject an empty title without touching the store", func() {
				// ARRANGE
				before, _ := propertyService.ListProperties(ctx)

				// ACT
				_, err := propertyService.CreateProperty(ctx, domain.PropertyInput{Title: "  ", Price: 100})

				// ASSERT
				Expect(err).To(MatchError(domain.ErrValidation))
				after, _ := propertyService.ListProperties(ctx)
				Expect(after).To(HaveLen(len(before)))
				Expect(publisher.Events()).To(BeEmpty())
			})

			It("should reject an unknown status", func() {
				// ACT
				_, err := propertyService.CreateProperty(ctx, domain.PropertyInput{Title: "Bad", Status: "archived"})

				// ASSERT
				Expect(err).To(MatchError(domain.ErrValidation))
			})
		})

		When("the publisher fails", func() {
			It("should still keep the property", func() {
				// ARRANGE
				publisher.Err = errors.New("broker down")

				// ACT
				created, err := propertyService.CreateProperty(ctx, domain.PropertyInput{Title: "Kept", Price: 1})

				// ASSERT
				Expect(err).NotTo(HaveOccurred())
				_, err = propertyService.GetProperty(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Context("GetProperty", func() {
		It("should return NotFound for an unknown id", func() {
			// ACT
			_, err := propertyService.GetProperty(ctx, "nope")

			// ASSERT
			Expect(err).To(MatchError(domain.ErrNotFound))
		})

		It("should return a copy that does not alias the store", func() {
			// ARRANGE
			first, err := propertyService.GetProperty(ctx, "prop1")
			Expect(err).NotTo(HaveOccurred())
			originalTitle := first.Title

			// ACT
			first.Title = "mutated"
			if len(first.Features) > 0 {
				first.Features[0] = "mutated"
			}

			// ASSERT
			second, _ := propertyService.GetProperty(ctx, "prop1")
			Expect(second.Title).To(Equal(originalTitle))
			Expect(second.Features).NotTo(ContainElement("mutated"))
		})
	})

	Context("UpdateProperty", func() {
		It("should merge only the fields in the patch and stamp updatedAt", func() {
			// ARRANGE
			original, _ := propertyService.GetProperty(ctx, "prop1")
			newPrice := original.Price + 1000
			sold := entities.StatusSold

			// ACT
			updated, err := propertyService.UpdateProperty(ctx, "prop1", domain.PropertyPatch{Price: &newPrice, Status: &sold})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Price).To(Equal(newPrice))
			Expect(updated.Status).To(Equal(entities.StatusSold))
			Expect(updated.Title).To(Equal(original.Title))
			Expect(updated.ID).To(Equal(original.ID))
			Expect(updated.CreatedAt).To(Equal(original.CreatedAt))
			Expect(updated.UpdatedAt).NotTo(BeNil())
			Expect(*updated.UpdatedAt).To(Equal(fixedNow))
			Expect(publisher.Types()).To(ContainElement(domain.EventPropertyUpdated))
		})

		It("should keep an explicitly emptied list as an empty list", func() {
			// ACT
			updated, err := propertyService.UpdateProperty(ctx, "prop1", domain.PropertyPatch{
				Features: []string{},
				Images:   []string{},
			})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Features).NotTo(BeNil())
			Expect(updated.Features).To(BeEmpty())
			Expect(updated.Images).NotTo(BeNil())

			fetched, _ := propertyService.GetProperty(ctx, "prop1")
			payload, err := json.Marshal(fetched)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(payload)).To(ContainSubstring(`"features":[]`))
			Expect(string(payload)).To(ContainSubstring(`"images":[]`))
		})

		It("should return NotFound for an unknown id", func() {
			// ARRANGE
			title := "whatever"

			// ACT
			_, err := propertyService.UpdateProperty(ctx, "nope", domain.PropertyPatch{Title: &title})

			// ASSERT
			Expect(err).To(MatchError(domain.ErrNotFound))
		})

		It("should leave the stored property unchanged when validation fails", func() {
			// ARRANGE
			negative := -1.0
			before, _ := propertyService.GetProperty(ctx, "prop1")

			// ACT
			_, err := propertyService.UpdateProperty(ctx, "prop1", domain.PropertyPatch{Price: &negative})

			// ASSERT
			Expect(err).To(MatchError(domain.ErrValidation))
			after, _ := propertyService.GetProperty(ctx, "prop1")
			Expect(after).To(BeComparableTo(before))
		})
	})

	Context("DeleteProperty", func() {
		It("should fail with NotFound for an id that does not exist", func() {
			// ACT
			err := propertyService.DeleteProperty(ctx, "nope")

			// ASSERT
			Expect(err).To(MatchError(domain.ErrNotFound))
		})

		It("should make a later get fail with NotFound", func() {
			// ACT
			err := propertyService.DeleteProperty(ctx, "prop2")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			_, err = propertyService.GetProperty(ctx, "prop2")
			Expect(err).To(MatchError(domain.ErrNotFound))
			Expect(publisher.Types()).To(Equal([]string{domain.EventPropertyDeleted}))
		})
	})

	Context("FilterProperties", func() {
		It("should return the whole collection for the default criteria", func() {
			// ARRANGE
			all, _ := propertyService.ListProperties(ctx)

			// ACT
			filtered, err := propertyService.FilterProperties(ctx, domain.PropertyFilter{})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(filtered).To(ConsistOf(all))
		})

		It("should return only the sold listings of a mixed fixture", func() {
			// ARRANGE
			newService(
				stubs.NewPropertyStub().WithStatus(entities.StatusSold).Get(),
				stubs.NewPropertyStub().WithStatus(entities.StatusSold).Get(),
				stubs.NewPropertyStub().WithStatus(entities.StatusForSale).Get(),
				stubs.NewPropertyStub().WithStatus(entities.StatusForSale).Get(),
				stubs.NewPropertyStub().WithStatus(entities.StatusForRent).Get(),
				stubs.NewPropertyStub().WithStatus(entities.StatusForRent).Get(),
				stubs.NewPropertyStub().WithStatus(entities.StatusPending).Get(),
			)

			// ACT
			filtered, err := propertyService.FilterProperties(ctx, domain.PropertyFilter{Status: entities.StatusSold})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(filtered).To(HaveLen(2))
			Expect(filtered).To(HaveEach(HaveField("Status", entities.StatusSold)))
		})
	})

	Context("HighlightedProperties", func() {
		It("should return only highlighted listings", func() {
			// ARRANGE
			newService(
				stubs.NewPropertyStub().WithHighlighted(true).Get(),
				stubs.NewPropertyStub().WithHighlighted(false).Get(),
			)

			// ACT
			highlighted, err := propertyService.HighlightedProperties(ctx)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(highlighted).To(HaveLen(1))
			Expect(highlighted[0].Highlighted).To(BeTrue())
		})
	})

	Context("simulated latency", func() {
		It("should give up when the context is cancelled", func() {
			// ARRANGE
			slow := properties.NewPropertyService(
				slog.New(slog.DiscardHandler),
				repository,
				latency.NewSimulator(map[latency.Op]time.Duration{latency.OpList: time.Minute}),
				publisher,
			)
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			// ACT
			_, err := slow.ListProperties(cancelled)

			// ASSERT
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
