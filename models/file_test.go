package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformTransitions(t *testing.T) {
	f := &File{TransformState: TransformWaiting}
	assert.True(t, f.CanTransitionTransform(TransformInProgress))
	assert.False(t, f.CanTransitionTransform(TransformDone))

	f.TransformState = TransformInProgress
	assert.True(t, f.CanTransitionTransform(TransformDone))
	assert.False(t, f.CanTransitionTransform(TransformWaiting))

	f.TransformState = TransformDone
	assert.False(t, f.CanTransitionTransform(TransformInProgress))
	assert.False(t, f.CanTransitionTransform(TransformWaiting))
}

func TestClassificationTransitions(t *testing.T) {
	f := &File{ClassificationState: ClassificationUnclassified}
	assert.True(t, f.CanTransitionClassification(ClassificationInProgress))
	assert.False(t, f.CanTransitionClassification(ClassificationDone))

	f.ClassificationState = ClassificationInProgress
	assert.True(t, f.CanTransitionClassification(ClassificationDone))

	// excluded is terminal
	f.ClassificationState = ClassificationExcluded
	assert.False(t, f.CanTransitionClassification(ClassificationInProgress))
	assert.False(t, f.CanTransitionClassification(ClassificationDone))
	assert.False(t, f.CanTransitionClassification(ClassificationUnclassified))
}

func TestSupported(t *testing.T) {
	assert.True(t, (&File{Type: "pdf"}).Supported())
	assert.False(t, (&File{Type: TypeUnsupported}).Supported())
}
