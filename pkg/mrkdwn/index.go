// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"sort"
	"unicode"
)

// sourceIndex holds lookup tables over the source of one parse call.
// Rules matching a suffix of that source use them to rule out matches
// in constant time instead of scanning to the end of input. Tables are
// built on first use.
type sourceIndex struct {
	src []rune
	// next maps a rune to the position of its next occurrence at or
	// after each position, len(src) when there is none
	next map[rune][]int
	// lastClose maps a style delimiter to its last closing position
	lastClose map[rune]int
	fence     *int
	ticks     *backtickRuns
	// words holds the end of the word run at each position
	words []int
}

// backtickRuns lists the maximal runs of backticks
type backtickRuns struct {
	// end is the end of the run containing each position
	end []int
	// starts holds the run starts per run length, ascending
	starts map[int][]int
	// lengths holds the distinct run lengths, ascending
	lengths []int
}

func newSourceIndex(src []rune) *sourceIndex {
	return &sourceIndex{src: src}
}

// offset returns the position of source in the indexed source, false
// when source is not a suffix of it
func (x *sourceIndex) offset(source []rune) (int, bool) {
	if x == nil || len(source) == 0 || len(source) > len(x.src) {
		return 0, false
	}
	if &source[len(source)-1] != &x.src[len(x.src)-1] {
		return 0, false
	}
	return len(x.src) - len(source), true
}

// nextOf returns the position of the first r at or after from
func (x *sourceIndex) nextOf(r rune, from int) int {
	if x.next == nil {
		x.next = map[rune][]int{}
	}
	next, ok := x.next[r]
	if !ok {
		next = make([]int, len(x.src)+1)
		next[len(x.src)] = len(x.src)
		for i := len(x.src) - 1; i >= 0; i-- {
			if x.src[i] == r {
				next[i] = i
			} else {
				next[i] = next[i+1]
			}
		}
		x.next[r] = next
	}
	if from >= len(next) {
		return len(x.src)
	}
	return next[from]
}

// closing returns the last position k where delim closes a styled span
// regardless of where it opened: closes(k) holds, the rune before k is
// not a space and an even number of backslashes precedes that rune.
// It returns -1 when there is none.
func (x *sourceIndex) closing(delim rune, closes func([]rune, int) bool) int {
	if x.lastClose == nil {
		x.lastClose = map[rune]int{}
	}
	if k, ok := x.lastClose[delim]; ok {
		return k
	}
	k := len(x.src) - 1
	for ; k >= 2; k-- {
		if closes(x.src, k) && !unicode.IsSpace(x.src[k-1]) && backslashesBefore(x.src, k-1)%2 == 0 {
			break
		}
	}
	if k < 2 {
		k = -1
	}
	x.lastClose[delim] = k
	return k
}

// wordEnd returns the end of the run of ASCII letters, digits and
// underscores starting at i
func (x *sourceIndex) wordEnd(i int) int {
	if x.words == nil {
		x.words = make([]int, len(x.src)+1)
		x.words[len(x.src)] = len(x.src)
		for j := len(x.src) - 1; j >= 0; j-- {
			if isWordRune(x.src[j]) {
				x.words[j] = x.words[j+1]
			} else {
				x.words[j] = j
			}
		}
	}
	return x.words[i]
}

// lastFence returns the last position starting three backticks, -1
// when there is none
func (x *sourceIndex) lastFence() int {
	if x.fence == nil {
		f := -1
		for i := len(x.src) - 3; i >= 0; i-- {
			if x.src[i] == '`' && x.src[i+1] == '`' && x.src[i+2] == '`' {
				f = i
				break
			}
		}
		x.fence = &f
	}
	return *x.fence
}

func (x *sourceIndex) backticks() *backtickRuns {
	if x.ticks != nil {
		return x.ticks
	}
	b := &backtickRuns{
		end:    make([]int, len(x.src)),
		starts: map[int][]int{},
	}
	for i := 0; i < len(x.src); {
		if x.src[i] != '`' {
			b.end[i] = i
			i++
			continue
		}
		j := i
		for j < len(x.src) && x.src[j] == '`' {
			j++
		}
		for k := i; k < j; k++ {
			b.end[k] = j
		}
		if _, ok := b.starts[j-i]; !ok {
			b.lengths = append(b.lengths, j-i)
		}
		b.starts[j-i] = append(b.starts[j-i], i)
		i = j
	}
	sort.Ints(b.lengths)
	x.ticks = b
	return b
}

// closingRun returns the start of the first run of exactly n backticks
// at or after from, -1 when there is none
func (b *backtickRuns) closingRun(n, from int) int {
	starts := b.starts[n]
	i := sort.SearchInts(starts, from)
	if i == len(starts) {
		return -1
	}
	return starts[i]
}

// backslashesBefore counts the backslashes immediately preceding i
func backslashesBefore(src []rune, i int) int {
	n := 0
	for i-n-1 >= 0 && src[i-n-1] == '\\' {
		n++
	}
	return n
}

// lookup returns the index covering source and the position of source
// in it. Sources that are not part of the current parse get an index
// of their own.
func (s *State) lookup(source []rune) (*sourceIndex, int) {
	if off, ok := s.scan.offset(source); ok {
		return s.scan, off
	}
	return newSourceIndex(source), 0
}
