package services

import (
	"lms/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourseVideosOrdering(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, "Intro", true)

	// inserted out of display order, with a duplicate index to force the
	// creation-time tie-break
	for _, v := range []models.CourseVideo{
		{CourseID: course.ID, Title: "Closing", OrderIndex: 2},
		{CourseID: course.ID, Title: "Welcome", OrderIndex: 0},
		{CourseID: course.ID, Title: "Part One", OrderIndex: 1},
		{CourseID: course.ID, Title: "Part Two", OrderIndex: 1},
	} {
		video := v
		require.NoError(t, db.Create(&video).Error)
	}

	videos, err := ListCourseVideos(db, course.ID)
	require.NoError(t, err)
	require.Len(t, videos, 4)

	assert.Equal(t, "Welcome", videos[0].Title)
	assert.Equal(t, "Part One", videos[1].Title)
	assert.Equal(t, "Part Two", videos[2].Title)
	assert.Equal(t, "Closing", videos[3].Title)
}

func TestListCourseDocumentsSkipsArchived(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, "Intro", true)

	doc := models.CourseDocument{CourseID: course.ID, Title: "Syllabus"}
	require.NoError(t, db.Create(&doc).Error)
	gone := models.CourseDocument{CourseID: course.ID, Title: "Old Syllabus"}
	gone.Status = models.StatusArchived
	require.NoError(t, db.Create(&gone).Error)

	documents, err := ListCourseDocuments(db, course.ID)
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "Syllabus", documents[0].Title)
}

func TestListCourseQuizzesContainmentChain(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, "Intro", true)

	quiz := models.CourseQuiz{CourseID: course.ID, Title: "Basics"}
	require.NoError(t, db.Create(&quiz).Error)
	question := models.QuizQuestion{QuizID: quiz.ID, Text: "What is 2+2?"}
	require.NoError(t, db.Create(&question).Error)
	for i, answer := range []models.QuizAnswer{
		{QuestionID: question.ID, Text: "4", IsCorrect: true},
		{QuestionID: question.ID, Text: "5"},
	} {
		a := answer
		a.OrderIndex = i
		require.NoError(t, db.Create(&a).Error)
	}

	quizzes, err := ListCourseQuizzes(db, course.ID)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	require.Len(t, quizzes[0].Questions, 1)
	require.Len(t, quizzes[0].Questions[0].Answers, 2)
	assert.True(t, quizzes[0].Questions[0].Answers[0].IsCorrect)
}
