// Package zonefile implements a compact, versioned binary encoding of a
// map of zone identifier to its offset history, meant to be produced
// offline by zonebuild and loaded once at process start into the tz
// registry. The codec style — a fixed magic, a version byte guarding
// backward compatibility, and explicit binary.Write/Read of every field —
// follows the same shape as an RFC 8536 TZif reader/writer, adapted to
// this package's own record layout instead of TZif's.
package zonefile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/tz"
)

var order = binary.BigEndian

// Magic identifies a zonefile stream.
var Magic = [4]byte{'C', 'T', 'Z', 'F'}

// Version1 is the only major version this package knows how to read.
// Future major versions may append fields to the end of a record; readers
// MUST reject any major version they don't recognize.
const Version1 byte = 1

// timeDefCode/dayOfWeekCode mirror tz.TimeDefinition and time.Weekday onto
// their single-byte wire codes.
func timeDefCode(d tz.TimeDefinition) (byte, error) {
	switch d {
	case tz.TimeDefUTC:
		return 0, nil
	case tz.TimeDefWall:
		return 1, nil
	case tz.TimeDefStandard:
		return 2, nil
	default:
		return 0, fmt.Errorf("zonefile: unknown time definition %v", d)
	}
}

func timeDefFromCode(c byte) (tz.TimeDefinition, error) {
	switch c {
	case 0:
		return tz.TimeDefUTC, nil
	case 1:
		return tz.TimeDefWall, nil
	case 2:
		return tz.TimeDefStandard, nil
	default:
		return 0, fmt.Errorf("zonefile: unknown time definition code %d", c)
	}
}

// dayOfWeekCode encodes a rule's optional weekday as 0 (unset) or
// 1=Sunday..7=Saturday.
func dayOfWeekCode(hasDOW bool, dow time.Weekday) byte {
	if !hasDOW {
		return 0
	}
	return byte(dow) + 1
}

func dayOfWeekFromCode(c byte) (hasDOW bool, dow time.Weekday) {
	if c == 0 {
		return false, 0
	}
	return true, time.Weekday(c - 1)
}

// offsetTable collects the distinct civil.ZoneOffset values a zone's Rules
// uses and assigns each a stable index for the transition records to
// reference.
type offsetTable struct {
	offsets []civil.ZoneOffset
	index   map[int]int
}

func newOffsetTable() *offsetTable {
	return &offsetTable{index: make(map[int]int)}
}

func (t *offsetTable) put(o civil.ZoneOffset) int {
	key := o.TotalSeconds()
	if i, ok := t.index[key]; ok {
		return i
	}
	i := len(t.offsets)
	t.offsets = append(t.offsets, o)
	t.index[key] = i
	return i
}

// Encode writes the zones in reg to w. Zone identifiers are written in
// sorted order so the output is deterministic.
func Encode(w io.Writer, reg map[string]*tz.Rules) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, Version1); err != nil {
		return err
	}

	ids := make([]string, 0, len(reg))
	for id := range reg {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := writeUint32(w, uint32(len(ids))); err != nil {
		return err
	}
	for _, id := range ids {
		if err := encodeZone(w, id, reg[id]); err != nil {
			return fmt.Errorf("zonefile: encoding zone %q: %w", id, err)
		}
	}
	return nil
}

func encodeZone(w io.Writer, id string, r *tz.Rules) error {
	if err := writeString(w, id); err != nil {
		return err
	}

	ot := newOffsetTable()
	if r.IsFixedOffset() {
		ot.put(r.FixedOffset())
	}
	for _, t := range r.StandardTransitionRecords() {
		ot.put(t.Before)
		ot.put(t.After)
	}
	for _, t := range r.SavingsTransitionRecords() {
		ot.put(t.Before)
		ot.put(t.After)
	}
	lastRules := r.LastRules()
	for _, lr := range lastRules {
		ot.put(lr.StandardOffset)
		ot.put(lr.OffsetBefore)
		ot.put(lr.OffsetAfter)
	}

	if err := writeUint32(w, uint32(len(ot.offsets))); err != nil {
		return err
	}
	for _, o := range ot.offsets {
		if err := binary.Write(w, order, int32(o.TotalSeconds())); err != nil {
			return err
		}
	}

	if r.IsFixedOffset() {
		// A fixed-offset zone is encoded as a zero-transition history
		// whose sole offset is index 0; readers reconstruct it via
		// tz.FixedRules when there are no transitions and no last-rules.
		return writeUint32Zeros(w, 3)
	}

	std := r.StandardTransitionRecords()
	if err := writeUint32(w, uint32(len(std))); err != nil {
		return err
	}
	for _, t := range std {
		if err := binary.Write(w, order, t.EpochSecond); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(t.Before))); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(t.After))); err != nil {
			return err
		}
	}

	sav := r.SavingsTransitionRecords()
	if err := writeUint32(w, uint32(len(sav))); err != nil {
		return err
	}
	for _, t := range sav {
		if err := binary.Write(w, order, t.EpochSecond); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(t.Before))); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(t.After))); err != nil {
			return err
		}
	}

	if err := writeUint32(w, uint32(len(lastRules))); err != nil {
		return err
	}
	for _, lr := range lastRules {
		if err := binary.Write(w, order, uint8(lr.Month)); err != nil {
			return err
		}
		if err := binary.Write(w, order, int8(lr.DayOfMonthIndicator)); err != nil {
			return err
		}
		if err := binary.Write(w, order, dayOfWeekCode(lr.HasDOW, lr.DayOfWeek)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(lr.LocalTime.SecondOfDay())); err != nil {
			return err
		}
		code, err := timeDefCode(lr.TimeDefinition)
		if err != nil {
			return err
		}
		if err := binary.Write(w, order, code); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(lr.StandardOffset))); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(lr.OffsetBefore))); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(ot.put(lr.OffsetAfter))); err != nil {
			return err
		}
	}
	return nil
}

func writeUint32Zeros(w io.Writer, n int) error {
	for i := 0; i < n; i++ {
		if err := writeUint32(w, 0); err != nil {
			return err
		}
	}
	return nil
}

func writeUint32(w io.Writer, v uint32) error { return binary.Write(w, order, v) }

func writeString(w io.Writer, s string) error {
	if err := writeUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// Decode reads a zonefile stream produced by Encode and returns the zone
// registry it describes.
func Decode(r io.Reader) (map[string]*tz.Rules, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("zonefile: reading magic: %w", err)
	}
	if !bytes.Equal(magic, Magic[:]) {
		return nil, fmt.Errorf("zonefile: bad magic %v", magic)
	}
	var version byte
	if err := binary.Read(r, order, &version); err != nil {
		return nil, fmt.Errorf("zonefile: reading version: %w", err)
	}
	if version != Version1 {
		return nil, fmt.Errorf("zonefile: unsupported major version %d", version)
	}

	count, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*tz.Rules, count)
	for i := uint32(0); i < count; i++ {
		id, rules, err := decodeZone(r)
		if err != nil {
			return nil, fmt.Errorf("zonefile: decoding zone %d: %w", i, err)
		}
		out[id] = rules
	}
	return out, nil
}

func decodeZone(r io.Reader) (string, *tz.Rules, error) {
	id, err := readString(r)
	if err != nil {
		return "", nil, err
	}

	offsetCount, err := readUint32(r)
	if err != nil {
		return "", nil, err
	}
	offsets := make([]civil.ZoneOffset, offsetCount)
	for i := range offsets {
		var secs int32
		if err := binary.Read(r, order, &secs); err != nil {
			return "", nil, err
		}
		o, err := civil.ZoneOffsetOfTotalSeconds(int(secs))
		if err != nil {
			return "", nil, err
		}
		offsets[i] = o
	}

	stdCount, err := readUint32(r)
	if err != nil {
		return "", nil, err
	}
	stdTransitions := make([]int64, stdCount)
	stdOffsets := make([]civil.ZoneOffset, 0, stdCount+1)
	if stdCount > 0 {
		stdOffsets = append(stdOffsets, civil.ZoneOffset{})
	}
	for i := uint32(0); i < stdCount; i++ {
		var epoch int64
		if err := binary.Read(r, order, &epoch); err != nil {
			return "", nil, err
		}
		before, after, err := readOffsetPair(r, offsets)
		if err != nil {
			return "", nil, err
		}
		stdTransitions[i] = epoch
		if i == 0 {
			stdOffsets[0] = before
		}
		stdOffsets = append(stdOffsets, after)
	}

	savCount, err := readUint32(r)
	if err != nil {
		return "", nil, err
	}
	savTransitions := make([]int64, savCount)
	wallOffsets := make([]civil.ZoneOffset, 0, savCount+1)
	if savCount > 0 {
		wallOffsets = append(wallOffsets, civil.ZoneOffset{})
	}
	for i := uint32(0); i < savCount; i++ {
		var epoch int64
		if err := binary.Read(r, order, &epoch); err != nil {
			return "", nil, err
		}
		before, after, err := readOffsetPair(r, offsets)
		if err != nil {
			return "", nil, err
		}
		savTransitions[i] = epoch
		if i == 0 {
			wallOffsets[0] = before
		}
		wallOffsets = append(wallOffsets, after)
	}

	lastCount, err := readUint32(r)
	if err != nil {
		return "", nil, err
	}
	lastRules := make([]tz.TransitionRule, lastCount)
	for i := uint32(0); i < lastCount; i++ {
		lr, err := decodeTransitionRule(r, offsets)
		if err != nil {
			return "", nil, err
		}
		lastRules[i] = lr
	}

	if stdCount == 0 && savCount == 0 && lastCount == 0 {
		if len(offsets) == 0 {
			return "", nil, fmt.Errorf("zonefile: zone %q has no offsets", id)
		}
		return id, tz.FixedRules(offsets[0]), nil
	}

	if stdCount == 0 {
		stdOffsets = []civil.ZoneOffset{offsets[0]}
	}
	if savCount == 0 {
		wallOffsets = []civil.ZoneOffset{offsets[0]}
	}

	rules, err := tz.NewRules(stdTransitions, stdOffsets, savTransitions, wallOffsets, lastRules)
	if err != nil {
		return "", nil, err
	}
	return id, rules, nil
}

func decodeTransitionRule(r io.Reader, offsets []civil.ZoneOffset) (tz.TransitionRule, error) {
	var month, dowCode, tdCode uint8
	var dayInd int8
	if err := binary.Read(r, order, &month); err != nil {
		return tz.TransitionRule{}, err
	}
	if err := binary.Read(r, order, &dayInd); err != nil {
		return tz.TransitionRule{}, err
	}
	if err := binary.Read(r, order, &dowCode); err != nil {
		return tz.TransitionRule{}, err
	}
	secondOfDay, err := readUint32(r)
	if err != nil {
		return tz.TransitionRule{}, err
	}
	if err := binary.Read(r, order, &tdCode); err != nil {
		return tz.TransitionRule{}, err
	}
	td, err := timeDefFromCode(tdCode)
	if err != nil {
		return tz.TransitionRule{}, err
	}
	stdIdx, err := readUint32(r)
	if err != nil {
		return tz.TransitionRule{}, err
	}
	beforeIdx, err := readUint32(r)
	if err != nil {
		return tz.TransitionRule{}, err
	}
	afterIdx, err := readUint32(r)
	if err != nil {
		return tz.TransitionRule{}, err
	}
	if int(stdIdx) >= len(offsets) || int(beforeIdx) >= len(offsets) || int(afterIdx) >= len(offsets) {
		return tz.TransitionRule{}, fmt.Errorf("zonefile: offset index out of range")
	}
	hasDOW, dow := dayOfWeekFromCode(dowCode)
	lt, err := civil.LocalTimeFromSecondOfDay(int(secondOfDay), 0)
	if err != nil {
		return tz.TransitionRule{}, err
	}
	return tz.TransitionRule{
		Month:               int(month),
		DayOfMonthIndicator: int(dayInd),
		DayOfWeek:           dow,
		HasDOW:              hasDOW,
		LocalTime:           lt,
		TimeDefinition:      td,
		StandardOffset:      offsets[stdIdx],
		OffsetBefore:        offsets[beforeIdx],
		OffsetAfter:         offsets[afterIdx],
	}, nil
}

func readOffsetPair(r io.Reader, offsets []civil.ZoneOffset) (before, after civil.ZoneOffset, err error) {
	beforeIdx, err := readUint32(r)
	if err != nil {
		return civil.ZoneOffset{}, civil.ZoneOffset{}, err
	}
	afterIdx, err := readUint32(r)
	if err != nil {
		return civil.ZoneOffset{}, civil.ZoneOffset{}, err
	}
	if int(beforeIdx) >= len(offsets) || int(afterIdx) >= len(offsets) {
		return civil.ZoneOffset{}, civil.ZoneOffset{}, fmt.Errorf("zonefile: offset index out of range")
	}
	return offsets[beforeIdx], offsets[afterIdx], nil
}

func readUint32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, order, &v)
	return v, err
}

func readString(r io.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
