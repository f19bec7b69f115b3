package content_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/curricuforge/curricuforge/internal"
	"github.com/curricuforge/curricuforge/internal/approval"
	"github.com/curricuforge/curricuforge/internal/content"
	"github.com/curricuforge/curricuforge/internal/identity"
)

func TestContent(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Content Suite")
}

// Mock preview surface for testing
type mockPreviewSurface struct {
	focused    *content.Artifact
	focusCalls int
}

func (m *mockPreviewSurface) Focus(a *content.Artifact) {
	m.focused = a
	m.focusCalls++
}

// sequentialIDs returns a deterministic id generator
func sequentialIDs() content.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("art-%03d", n)
	}
}

func newUser(name string, role identity.Role) *identity.User {
	return &identity.User{
		Name:       name,
		Role:       role,
		College:    "Tech U",
		Department: "CS",
	}
}

// checkPublishedInvariant asserts is_published tracks the status for
// every artifact in the ledger.
func checkPublishedInvariant(ledger *content.Ledger) {
	for _, a := range ledger.List() {
		ExpectWithOffset(1, a.IsPublished).To(Equal(a.ApprovalStatus.Published()),
			"artifact %s: is_published drifted from status %s", a.ID, a.ApprovalStatus)
	}
}

var _ = Describe("ContentService", func() {
	var (
		service *content.Service
		ledger  *content.Ledger
		surface *mockPreviewSurface
	)

	draft := content.CreateArtifactDTO{
		Kind:    content.KindAssignment,
		Title:   "Midterm",
		Content: "## Questions\n1. ...",
	}

	BeforeEach(func() {
		ledger = content.NewLedger()
		surface = &mockPreviewSurface{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = content.NewService(ledger, surface, sequentialIDs(), logger)
	})

	Describe("CreateArtifact", func() {
		Context("with no active session", func() {
			It("should fail with an unauthenticated error and change nothing", func() {
				// When
				result, err := service.CreateArtifact(draft, nil)

				// Then
				Expect(err).To(MatchError(internal.ErrUnauthenticated))
				Expect(result).To(BeNil())
				Expect(ledger.Len()).To(Equal(0))
				Expect(surface.focusCalls).To(Equal(0))
			})
		})

		Context("when a Management actor creates content", func() {
			It("should self-approve and publish immediately", func() {
				// When
				result, err := service.CreateArtifact(draft, newUser("Dean", identity.RoleManagement))

				// Then
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ApprovalStatus).To(Equal(approval.StatusApprovedMgmt))
				Expect(result.IsPublished).To(BeTrue())
				checkPublishedInvariant(ledger)
			})
		})

		Context("when a Department actor creates content", func() {
			It("should self-approve at department level", func() {
				// When
				result, err := service.CreateArtifact(draft, newUser("HoD", identity.RoleDepartment))

				// Then
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ApprovalStatus).To(Equal(approval.StatusApprovedDept))
				Expect(result.IsPublished).To(BeTrue())
				checkPublishedInvariant(ledger)
			})
		})

		Context("when a Faculty or Student actor creates content", func() {
			It("should enter the pending queue unpublished", func() {
				for _, role := range []identity.Role{identity.RoleFaculty, identity.RoleStudent} {
					// When
					result, err := service.CreateArtifact(draft, newUser("author", role))

					// Then
					Expect(err).ToNot(HaveOccurred())
					Expect(result.ApprovalStatus).To(Equal(approval.StatusPending))
					Expect(result.IsPublished).To(BeFalse())
				}
				checkPublishedInvariant(ledger)
			})
		})

		It("should stamp origin fields from the actor", func() {
			// Given
			actor := newUser("Jane", identity.RoleFaculty)

			// When
			result, err := service.CreateArtifact(draft, actor)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(result.OriginRole).To(Equal(identity.RoleFaculty))
			Expect(result.AuthorName).To(Equal("Jane"))
			Expect(result.College).To(Equal("Tech U"))
			Expect(result.Department).To(Equal("CS"))
			Expect(result.ID).To(Equal("art-001"))
			Expect(result.CreatedAt).ToNot(BeZero())
		})

		It("should focus the new artifact in the preview surface", func() {
			// When
			result, err := service.CreateArtifact(draft, newUser("Jane", identity.RoleFaculty))

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(surface.focusCalls).To(Equal(1))
			Expect(surface.focused).To(BeIdenticalTo(result))
		})

		It("should reject an invalid draft", func() {
			// Given
			bad := content.CreateArtifactDTO{Kind: "poem", Title: "x", Content: "y"}

			// When
			result, err := service.CreateArtifact(bad, newUser("Jane", identity.RoleFaculty))

			// Then
			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
			Expect(ledger.Len()).To(Equal(0))
		})

		It("should keep newest-first ordering", func() {
			// Given
			actor := newUser("Jane", identity.RoleFaculty)
			first, err := service.CreateArtifact(content.CreateArtifactDTO{
				Kind: content.KindCurriculum, Title: "A", Content: "a",
			}, actor)
			Expect(err).ToNot(HaveOccurred())
			second, err := service.CreateArtifact(content.CreateArtifactDTO{
				Kind: content.KindLessonPlan, Title: "B", Content: "b",
			}, actor)
			Expect(err).ToNot(HaveOccurred())

			// When
			items, err := service.ListVisible(actor)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(HaveLen(2))
			Expect(items[0].ID).To(Equal(second.ID))
			Expect(items[1].ID).To(Equal(first.ID))
		})
	})

	Describe("SetApproval", func() {
		var artifact *content.Artifact

		BeforeEach(func() {
			var err error
			artifact, err = service.CreateArtifact(draft, newUser("Jane", identity.RoleFaculty))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should return not found for an unknown id and leave the ledger untouched", func() {
			// Given
			before := ledger.Len()

			// When
			result, err := service.SetApproval("missing", approval.StatusApprovedMgmt, newUser("Dean", identity.RoleManagement), "")

			// Then
			Expect(err).To(MatchError(internal.ErrArtifactNotFound))
			Expect(result).To(BeNil())
			Expect(ledger.Len()).To(Equal(before))
			Expect(artifact.ApprovalStatus).To(Equal(approval.StatusPending))
		})

		It("should record the acting user even on rejection", func() {
			// When
			result, err := service.SetApproval(artifact.ID, approval.StatusRejected, newUser("Dean", identity.RoleManagement), "needs work")

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ApprovedBy).To(Equal("Dean"))
			Expect(result.Feedback).To(Equal("needs work"))
			Expect(result.IsPublished).To(BeFalse())
			checkPublishedInvariant(ledger)
		})

		It("should be idempotent apart from the latest actor", func() {
			// When
			first, err := service.SetApproval(artifact.ID, approval.StatusApprovedMgmt, newUser("Dean", identity.RoleManagement), "")
			Expect(err).ToNot(HaveOccurred())
			snapshot := *first

			again, err := service.SetApproval(artifact.ID, approval.StatusApprovedMgmt, newUser("Dean", identity.RoleManagement), "")

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(*again).To(Equal(snapshot))
			checkPublishedInvariant(ledger)
		})
	})

	Describe("approval commands", func() {
		var pending *content.Artifact

		BeforeEach(func() {
			var err error
			pending, err = service.CreateArtifact(draft, newUser("Jane", identity.RoleFaculty))
			Expect(err).ToNot(HaveOccurred())
		})

		Describe("Verify", func() {
			It("should let Department approve Faculty work", func() {
				// When
				result, err := service.Verify(pending.ID, newUser("HoD", identity.RoleDepartment))

				// Then
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ApprovalStatus).To(Equal(approval.StatusApprovedDept))
				Expect(result.IsPublished).To(BeTrue())
				Expect(result.ApprovedBy).To(Equal("HoD"))
				checkPublishedInvariant(ledger)
			})

			It("should forbid Faculty from verifying", func() {
				// When
				_, err := service.Verify(pending.ID, newUser("Peer", identity.RoleFaculty))

				// Then
				Expect(err).To(MatchError(internal.ErrApprovalForbidden))
				Expect(pending.ApprovalStatus).To(Equal(approval.StatusPending))
			})

			It("should forbid Department from verifying Management output", func() {
				// Given
				mgmtArtifact, err := service.CreateArtifact(draft, newUser("Dean", identity.RoleManagement))
				Expect(err).ToNot(HaveOccurred())

				// When
				_, err = service.Verify(mgmtArtifact.ID, newUser("HoD", identity.RoleDepartment))

				// Then
				Expect(err).To(MatchError(internal.ErrApprovalForbidden))
			})
		})

		Describe("Authorize", func() {
			It("should let Management approve any artifact", func() {
				// When
				result, err := service.Authorize(pending.ID, newUser("Dean", identity.RoleManagement))

				// Then
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ApprovalStatus).To(Equal(approval.StatusApprovedMgmt))
				Expect(result.IsPublished).To(BeTrue())
				checkPublishedInvariant(ledger)
			})

			It("should forbid Department from authorizing", func() {
				// When
				_, err := service.Authorize(pending.ID, newUser("HoD", identity.RoleDepartment))

				// Then
				Expect(err).To(MatchError(internal.ErrApprovalForbidden))
			})
		})

		Describe("Deny", func() {
			It("should reject with the standard note when no feedback is given", func() {
				// When
				result, err := service.Deny(pending.ID, newUser("Dean", identity.RoleManagement), "")

				// Then
				Expect(err).ToNot(HaveOccurred())
				Expect(result.ApprovalStatus).To(Equal(approval.StatusRejected))
				Expect(result.IsPublished).To(BeFalse())
				Expect(result.Feedback).To(Equal("Rejected by Management"))
				checkPublishedInvariant(ledger)
			})

			It("should keep explicit feedback", func() {
				// When
				result, err := service.Deny(pending.ID, newUser("Dean", identity.RoleManagement), "cite sources")

				// Then
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Feedback).To(Equal("cite sources"))
			})

			It("should report not found for an unknown id", func() {
				// When
				_, err := service.Deny("missing", newUser("Dean", identity.RoleManagement), "")

				// Then
				Expect(err).To(MatchError(internal.ErrArtifactNotFound))
			})
		})
	})

	Describe("list filters", func() {
		BeforeEach(func() {
			_, err := service.CreateArtifact(draft, newUser("Jane", identity.RoleFaculty))
			Expect(err).ToNot(HaveOccurred())

			other := &identity.User{Name: "HoD", Role: identity.RoleDepartment, College: "Tech U", Department: "EE"}
			_, err = service.CreateArtifact(content.CreateArtifactDTO{
				Kind: content.KindAnnouncement, Title: "Notice", Content: "n",
			}, other)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should expose the full authoritative set to any reader", func() {
			items, err := service.ListVisible(newUser("Ravi", identity.RoleStudent))
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(HaveLen(2))
		})

		It("should refuse an absent reader", func() {
			_, err := service.ListVisible(nil)
			Expect(err).To(MatchError(internal.ErrUnauthenticated))
		})

		It("should narrow by department", func() {
			items, err := service.ListDepartment(newUser("Dean", identity.RoleManagement), "EE")
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(HaveLen(1))
			Expect(items[0].Department).To(Equal("EE"))
		})

		It("should narrow to the pending queue", func() {
			items, err := service.ListPending(newUser("Dean", identity.RoleManagement))
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(HaveLen(1))
			Expect(items[0].ApprovalStatus).To(Equal(approval.StatusPending))
		})

		It("should narrow by author", func() {
			items, err := service.ListByAuthor(newUser("Dean", identity.RoleManagement), "Jane")
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(HaveLen(1))
			Expect(items[0].AuthorName).To(Equal("Jane"))
		})
	})

	Describe("approval round trip", func() {
		It("should walk an assignment from pending through verify to denial", func() {
			// Given: Faculty Jane in CS at Tech U submits an assignment
			jane := newUser("Jane", identity.RoleFaculty)
			artifact, err := service.CreateArtifact(content.CreateArtifactDTO{
				Kind:    content.KindAssignment,
				Title:   "Midterm",
				Content: "...",
			}, jane)
			Expect(err).ToNot(HaveOccurred())
			Expect(artifact.ApprovalStatus).To(Equal(approval.StatusPending))
			Expect(artifact.IsPublished).To(BeFalse())
			Expect(artifact.OriginRole).To(Equal(identity.RoleFaculty))

			// When: the department verifies it
			result, err := service.Verify(artifact.ID, newUser("HoD", identity.RoleDepartment))

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ApprovalStatus).To(Equal(approval.StatusApprovedDept))
			Expect(result.IsPublished).To(BeTrue())
			Expect(result.ApprovedBy).To(Equal("HoD"))
			checkPublishedInvariant(ledger)

			// When: management later denies it
			result, err = service.Deny(artifact.ID, newUser("Dean", identity.RoleManagement), "")

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ApprovalStatus).To(Equal(approval.StatusRejected))
			Expect(result.IsPublished).To(BeFalse())
			Expect(result.Feedback).To(Equal("Rejected by Management"))
			checkPublishedInvariant(ledger)
		})
	})
})
