package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendThenRemoveIsNoOp(t *testing.T) {
	base := DefaultDocument()

	for _, name := range CollectionNames() {
		withItem, item, err := base.WithAppended(name, 99)
		require.NoError(t, err, name)

		restored, err := withItem.WithRemoved(name, item.ItemID())
		require.NoError(t, err, name)

		assert.Equal(t, base, restored, "append+remove should round-trip on %s", name)
	}
}

func TestWithItemFieldChangesOnlyTargetField(t *testing.T) {
	base := DefaultDocument()

	updated, err := base.WithItemField(CollectionWorkExperience, 0, "company", "Acme Corp")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", updated.WorkExperience[0].Company)
	assert.Equal(t, base.WorkExperience[0].ID, updated.WorkExperience[0].ID)
	assert.Equal(t, base.WorkExperience[0].JobTitle, updated.WorkExperience[0].JobTitle)
	assert.Equal(t, base.WorkExperience[0].StartDate, updated.WorkExperience[0].StartDate)
	assert.Equal(t, base.WorkExperience[1], updated.WorkExperience[1])

	// Untouched collections keep value equality with the source.
	assert.Equal(t, base.Education, updated.Education)
	assert.Equal(t, base.Skills, updated.Skills)
	assert.Equal(t, base.PersonalDetails, updated.PersonalDetails)

	// The source document itself is never mutated.
	assert.Equal(t, "Tech Solutions Inc.", base.WorkExperience[0].Company)
}

func TestWithItemFieldOutOfRange(t *testing.T) {
	base := DefaultDocument()

	_, err := base.WithItemField(CollectionSkills, len(base.Skills), "name", "Go")
	require.Error(t, err)
	var oor *OutOfRangeError
	assert.ErrorAs(t, err, &oor)
	assert.Equal(t, CollectionSkills, oor.Collection)

	_, err = base.WithItemField(CollectionSkills, -1, "name", "Go")
	assert.Error(t, err)
}

func TestWithItemFieldUnknownField(t *testing.T) {
	base := DefaultDocument()

	_, err := base.WithItemField(CollectionSkills, 0, "id", "42")
	var uf *UnknownFieldError
	require.ErrorAs(t, err, &uf)
	assert.Equal(t, "id", uf.Field)
}

func TestConferenceRoleClosedSet(t *testing.T) {
	base := DefaultDocument()

	updated, err := base.WithItemField(CollectionConferencePresentations, 0, "role", RoleDelegate)
	require.NoError(t, err)
	assert.Equal(t, RoleDelegate, updated.ConferencePresentations[0].Role)

	_, err = base.WithItemField(CollectionConferencePresentations, 0, "role", "speaker")
	var iv *InvalidValueError
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "speaker", iv.Value)
}

func TestWithRemovedAbsentIDIsNoOp(t *testing.T) {
	base := DefaultDocument()

	removed, err := base.WithRemoved(CollectionSkills, 12345)
	require.NoError(t, err)
	assert.Equal(t, base.Skills, removed.Skills)
}

func TestWithRemovedPreservesOrder(t *testing.T) {
	base := DefaultDocument()

	removed, err := base.WithRemoved(CollectionSkills, 3)
	require.NoError(t, err)

	require.Len(t, removed.Skills, len(base.Skills)-1)
	ids := itemIDs(removed.Skills)
	assert.Equal(t, []int64{1, 2, 4, 5, 6, 7, 8}, ids)
}

func TestWithScalar(t *testing.T) {
	base := DefaultDocument()

	updated, err := base.WithScalar(FieldSummary, "A short summary.")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", updated.Summary)
	assert.NotEqual(t, base.Summary, updated.Summary)

	updated, err = base.WithScalar(FieldFullName, "John Smith")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", updated.PersonalDetails.FullName)
	assert.Equal(t, base.PersonalDetails.Email, updated.PersonalDetails.Email)

	_, err = base.WithScalar("nickname", "JD")
	assert.Error(t, err)
}

func TestUnknownCollection(t *testing.T) {
	base := DefaultDocument()

	_, err := base.WithRemoved("hobbies", 1)
	var uc *UnknownCollectionError
	require.ErrorAs(t, err, &uc)

	_, _, err = base.WithAppended("hobbies", 1)
	assert.ErrorAs(t, err, &uc)

	_, err = base.WithItemField("hobbies", 0, "name", "chess")
	assert.ErrorAs(t, err, &uc)
}

func TestAppendedConferenceDefaultsToPresenter(t *testing.T) {
	base := DefaultDocument()

	doc, item, err := base.WithAppended(CollectionConferencePresentations, 7)
	require.NoError(t, err)

	conf, ok := item.(ConferencePresentation)
	require.True(t, ok)
	assert.Equal(t, RolePresenter, conf.Role)
	assert.Equal(t, RolePresenter, doc.ConferencePresentations[len(doc.ConferencePresentations)-1].Role)
}

func TestCloneIsIndependent(t *testing.T) {
	base := DefaultDocument()
	clone := base.Clone()

	clone.Skills[0].Name = "changed"
	assert.Equal(t, "React", base.Skills[0].Name)
	assert.Equal(t, base, DefaultDocument())
}

func TestMaxItemID(t *testing.T) {
	assert.Equal(t, int64(8), DefaultDocument().MaxItemID())
	assert.Equal(t, int64(0), Document{}.MaxItemID())
}
