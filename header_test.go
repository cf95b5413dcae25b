package acidlist

import (
	"testing"
	"unsafe"
)

type smallPayload struct {
	V int64
}

func TestComputeLayoutAlignsNodes(t *testing.T) {
	nodeSize := unsafe.Sizeof(node[smallPayload]{})
	nodeAlign := unsafe.Alignof(node[smallPayload]{})

	lay, err := computeLayout(3, 10, nodeSize, nodeAlign)
	if err != nil {
		t.Fatalf("computeLayout: %v", err)
	}

	headerSize := uint64(unsafe.Sizeof(Header{}))
	if lay.headsOffset < headerSize {
		t.Errorf("headsOffset %d overlaps header (size %d)", lay.headsOffset, headerSize)
	}
	if lay.headsOffset%uint64(unsafe.Alignof(link{})) != 0 {
		t.Errorf("headsOffset %d not aligned to Link alignment", lay.headsOffset)
	}

	wantHeadsEnd := lay.headsOffset + 3*uint64(unsafe.Sizeof(link{}))
	if lay.nodesOffset < wantHeadsEnd {
		t.Errorf("nodesOffset %d overlaps heads array (ends at %d)", lay.nodesOffset, wantHeadsEnd)
	}
	if lay.nodesOffset%uint64(nodeAlign) != 0 {
		t.Errorf("nodesOffset %d not aligned to node alignment %d", lay.nodesOffset, nodeAlign)
	}

	wantFileSize := lay.nodesOffset + 10*uint64(nodeSize)
	if lay.fileSize != wantFileSize {
		t.Errorf("fileSize = %d, want %d", lay.fileSize, wantFileSize)
	}
}

func TestComputeLayoutZeroNodes(t *testing.T) {
	nodeSize := unsafe.Sizeof(node[smallPayload]{})
	nodeAlign := unsafe.Alignof(node[smallPayload]{})

	lay, err := computeLayout(3, 0, nodeSize, nodeAlign)
	if err != nil {
		t.Fatalf("computeLayout: %v", err)
	}
	if lay.fileSize != lay.nodesOffset {
		t.Errorf("fileSize = %d, want %d (no nodes)", lay.fileSize, lay.nodesOffset)
	}
}

func TestComputeLayoutRejectsOversizedFile(t *testing.T) {
	nodeSize := unsafe.Sizeof(node[[1024]byte]{})
	nodeAlign := unsafe.Alignof(node[[1024]byte]{})

	_, err := computeLayout(1, maxIndexCount, nodeSize, nodeAlign)
	if err == nil {
		t.Fatal("expected an error for a file size far beyond the limit")
	}
}
