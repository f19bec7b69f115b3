package content_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/curricuforge/curricuforge/internal/approval"
	"github.com/curricuforge/curricuforge/internal/content"
	"github.com/curricuforge/curricuforge/internal/identity"
)

func makeArtifact(id string) *content.Artifact {
	return &content.Artifact{
		ID:             id,
		Kind:           content.KindCurriculum,
		OriginRole:     identity.RoleFaculty,
		AuthorName:     "Jane",
		Title:          "Artifact " + id,
		Content:        "...",
		CreatedAt:      time.Now(),
		College:        "Tech U",
		Department:     "CS",
		ApprovalStatus: approval.StatusPending,
	}
}

var _ = Describe("Ledger", func() {
	var ledger *content.Ledger

	BeforeEach(func() {
		ledger = content.NewLedger()
	})

	Describe("Insert", func() {
		It("should prepend so the newest entry comes first", func() {
			// Given
			a := makeArtifact("a")
			b := makeArtifact("b")

			// When
			ledger.Insert(a)
			ledger.Insert(b)

			// Then
			items := ledger.List()
			Expect(items).To(HaveLen(2))
			Expect(items[0]).To(BeIdenticalTo(b))
			Expect(items[1]).To(BeIdenticalTo(a))
		})

		It("should make the entry retrievable by id", func() {
			// Given
			a := makeArtifact("a")

			// When
			ledger.Insert(a)

			// Then
			got, ok := ledger.Get("a")
			Expect(ok).To(BeTrue())
			Expect(got).To(BeIdenticalTo(a))
		})
	})

	Describe("List", func() {
		It("should return a copy of the ordering but the live records", func() {
			// Given
			a := makeArtifact("a")
			ledger.Insert(a)

			// When
			items := ledger.List()
			items[0] = nil

			// Then: the ledger's own ordering is untouched
			fresh := ledger.List()
			Expect(fresh[0]).To(BeIdenticalTo(a))
		})
	})

	Describe("SetApproval", func() {
		It("should mutate the stored record in place", func() {
			// Given
			a := makeArtifact("a")
			ledger.Insert(a)
			external := a // a view held elsewhere, e.g. the preview surface

			// When
			updated, ok := ledger.SetApproval("a", approval.StatusApprovedMgmt, "Dean", "")

			// Then
			Expect(ok).To(BeTrue())
			Expect(updated).To(BeIdenticalTo(a))
			Expect(external.ApprovalStatus).To(Equal(approval.StatusApprovedMgmt))
			Expect(external.IsPublished).To(BeTrue())
			Expect(external.ApprovedBy).To(Equal("Dean"))
		})

		It("should report false for an unknown id without touching anything", func() {
			// Given
			a := makeArtifact("a")
			ledger.Insert(a)

			// When
			updated, ok := ledger.SetApproval("missing", approval.StatusRejected, "Dean", "")

			// Then
			Expect(ok).To(BeFalse())
			Expect(updated).To(BeNil())
			Expect(ledger.Len()).To(Equal(1))
			Expect(a.ApprovalStatus).To(Equal(approval.StatusPending))
		})

		It("should recompute the published flag from the new status", func() {
			// Given
			a := makeArtifact("a")
			ledger.Insert(a)

			// When / Then
			ledger.SetApproval("a", approval.StatusApprovedDept, "HoD", "")
			Expect(a.IsPublished).To(BeTrue())

			ledger.SetApproval("a", approval.StatusRejected, "Dean", "no")
			Expect(a.IsPublished).To(BeFalse())

			ledger.SetApproval("a", approval.StatusPending, "Dean", "")
			Expect(a.IsPublished).To(BeFalse())
		})
	})
})
