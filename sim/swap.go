package sim

import (
	"github.com/katalvlaran/greenwave/sums"
)

// The swap machinery reorders only uncommitted slots — committed slots
// act as immovable barriers — so that the cyclic position of the current
// second falls inside a slot of the required green time. Both swaps
// preserve the multiset of slot durations; only the order of uncommitted
// slots changes.
//
// Offsets are measured from the start of the window under consideration:
// a prefix subset summing to σ places the target slot over the current
// second exactly when σ ∈ [maxOffset−need+1, maxOffset] (clamped at 0),
// where maxOffset is the distance from the window start to that second.

// swapSlot tries an inner swap within the contiguous uncommitted run
// around slotIdx, then an outer swap against a disjoint run. It returns
// the index of the slot now holding the required duration.
func (o *openIntersection) swapSlot(slotIdx, need, offset int) (int, bool) {
	targetIdx, exclStart, exclEnd, ok := o.innerSwap(slotIdx, need, offset)
	if ok {
		return targetIdx, true
	}

	return o.outerSwap(slotIdx, exclStart, exclEnd, need, offset)
}

// minOffsetFor clamps the lower bound of the viable prefix-sum range.
func minOffsetFor(maxOffset, need int) int {
	if maxOffset >= need {
		return maxOffset - need + 1
	}

	return 0
}

// innerSwap grows a window over the maximal run of uncommitted slots
// containing slotIdx — rightward first, then leftward — feeding slot
// durations into a subset-sum set until a duration equal to need has been
// seen and some subset of the others sums into the viable offset range.
// On success it rewrites the window as prefix ++ need ++ rest and returns
// the target slot's index; on failure it returns the examined window as
// the exclude range for the outer swap.
func (o *openIntersection) innerSwap(slotIdx, need, offset int) (targetIdx, exclStart, exclEnd int, ok bool) {
	targetFound := false
	all := sums.New()
	maxOffset := offset
	minOffset := minOffsetFor(maxOffset, need)

	// Expand right. The window start is fixed, so offsets are stable.
	endIdx := slotIdx
	for idx := slotIdx; idx < len(o.slots); idx++ {
		if targetFound && all.ContainsAny(minOffset, maxOffset) {
			break
		}
		if o.slots[idx].street != unassigned {
			break
		}
		endIdx = idx
		cur := o.slots[idx].green
		if !targetFound && cur == need {
			targetFound = true
		} else {
			all.Add(cur)
		}
	}

	// Expand left if still not viable. Every step moves the window start,
	// shifting the offset bounds by the added slot's duration.
	startIdx := slotIdx
	for idx := slotIdx - 1; idx >= 0; idx-- {
		if targetFound && all.ContainsAny(minOffset, maxOffset) {
			break
		}
		if o.slots[idx].street != unassigned {
			break
		}
		startIdx = idx
		cur := o.slots[idx].green
		maxOffset += cur
		minOffset = minOffsetFor(maxOffset, need)
		if !targetFound && cur == need {
			targetFound = true
		} else {
			all.Add(cur)
		}
	}

	if !targetFound || !all.ContainsAny(minOffset, maxOffset) {
		return 0, startIdx, endIdx, false
	}

	prefix, _ := all.MinSumValues(minOffset, maxOffset)

	return o.rearrange(startIdx, endIdx, prefix, need), 0, 0, true
}

// outerSwap looks for a second run of contiguous uncommitted slots —
// disjoint from the exclude range — whose total duration equals that of a
// window around slotIdx, and which contains a slot of duration need plus
// a viable prefix subset. The two windows then trade places.
func (o *openIntersection) outerSwap(slotIdx, exclStart, exclEnd, need, offset int) (int, bool) {
	rangeOffset := offset
	for rangeStart := slotIdx; rangeStart >= 0; rangeStart-- {
		if o.slots[rangeStart].street != unassigned {
			break
		}
		if rangeStart < slotIdx {
			rangeOffset += o.slots[rangeStart].green
		}
		totalTime := 0
		for i := rangeStart; i < slotIdx; i++ {
			totalTime += o.slots[i].green
		}
		for rangeEnd := slotIdx; rangeEnd < len(o.slots); rangeEnd++ {
			if o.slots[rangeEnd].street != unassigned {
				break
			}
			totalTime += o.slots[rangeEnd].green
			if totalTime < need {
				continue
			}
			if idx, ok := o.rangeSwap(rangeStart, rangeEnd, exclStart, exclEnd, totalTime, need, rangeOffset); ok {
				return idx, true
			}
		}
	}

	return 0, false
}

// rangeSwap scans for a run of uncommitted slots, outside both the
// exclude range and the window being replaced, whose durations sum to
// exactly totalTime and admit prefix ++ need covering the offset. When
// found, the run is internally rearranged and the two windows swap.
func (o *openIntersection) rangeSwap(rangeStart, rangeEnd, exclStart, exclEnd, totalTime, need, offset int) (int, bool) {
	maxOffset := offset
	minOffset := minOffsetFor(maxOffset, need)

	for startIdx := 0; startIdx < len(o.slots); startIdx++ {
		if startIdx >= exclStart && startIdx <= exclEnd {
			continue
		}
		acc := 0
		targetFound := false
		all := sums.New()

		for endIdx := startIdx; endIdx < len(o.slots); endIdx++ {
			if o.slots[endIdx].street != unassigned {
				break
			}
			if endIdx >= exclStart && endIdx <= exclEnd {
				break
			}
			if endIdx >= rangeStart && endIdx <= rangeEnd {
				break
			}

			cur := o.slots[endIdx].green
			acc += cur
			if acc > totalTime {
				break
			}
			if !targetFound && cur == need {
				targetFound = true
			} else {
				all.Add(cur)
			}
			if acc != totalTime {
				continue
			}
			if !targetFound || !all.ContainsAny(minOffset, maxOffset) {
				break
			}

			prefix, _ := all.MinSumValues(minOffset, maxOffset)
			targetDelta := len(prefix)
			o.rearrange(startIdx, endIdx, prefix, need)

			if startIdx < rangeStart {
				// Matched window sits before the original: after the swap
				// it ends where the original window ended.
				o.reorderRanges(startIdx, endIdx, rangeStart, rangeEnd)

				return rangeEnd - (endIdx - startIdx) + targetDelta, true
			}
			o.reorderRanges(rangeStart, rangeEnd, startIdx, endIdx)

			return rangeStart + targetDelta, true
		}
	}

	return 0, false
}

// rearrange rewrites slots[startIdx..endIdx] (all uncommitted) as the
// prefix durations, then need, then the remaining durations in their
// original relative order. Returns the index of the need slot.
func (o *openIntersection) rearrange(startIdx, endIdx int, prefix []int, need int) int {
	window := make([]slot, endIdx-startIdx+1)
	copy(window, o.slots[startIdx:endIdx+1])

	idx := startIdx
	for _, green := range append(prefix, need) {
		pos := -1
		for i := range window {
			if window[i].green == green {
				pos = i

				break
			}
		}
		if pos < 0 {
			panic("sim: rearrange lost a slot duration")
		}
		window = append(window[:pos], window[pos+1:]...)
		o.slots[idx] = slot{street: unassigned, green: green}
		idx++
	}
	copy(o.slots[idx:idx+len(window)], window)

	return idx - 1
}

// reorderRanges swaps two disjoint slot windows, keeping the slots
// between them in place: [left][middle][right] becomes
// [right][middle][left]. The windows may hold different slot counts;
// their total durations are equal by construction.
func (o *openIntersection) reorderRanges(leftStart, leftEnd, rightStart, rightEnd int) {
	window := make([]slot, rightEnd-leftStart+1)
	copy(window, o.slots[leftStart:rightEnd+1])

	left := window[:leftEnd-leftStart+1]
	middle := window[leftEnd-leftStart+1 : rightStart-leftStart]
	right := window[rightStart-leftStart:]

	idx := leftStart
	idx += copy(o.slots[idx:], right)
	idx += copy(o.slots[idx:], middle)
	copy(o.slots[idx:], left)
}
