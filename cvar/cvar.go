// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar is a registry of named tunables. The string value of a cvar
// is the truth, its float value is derived from it.
package cvar

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknown    = errors.New("unknown cvar")
	ErrRegistered = errors.New("cvar already registered")
	ErrReadOnly   = errors.New("cvar is read only")
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	// cvar flags bitfield
	NONE   flag = 0
	NOTIFY flag = 1 << 1 // log changes
	ROM    flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	notify   bool
	rom      bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
}

func All() []*Cvar {
	return cvarArray
}

// Sorted returns all cvars ordered by name.
func Sorted() []*Cvar {
	cvs := append([]*Cvar(nil), cvarArray...)
	sort.Slice(cvs, func(i, j int) bool {
		return cvs[i].name < cvs[j].name
	})
	return cvs
}

func (cv *Cvar) Notify() bool {
	return cv.notify
}

func (cv *Cvar) ReadOnly() bool {
	return cv.rom
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	old := cv.stringValue
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.notify && old != s {
		slog.Info("cvar changed", slog.String("name", cv.name), slog.String("value", s))
	}
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) DefaultValue() string {
	return cv.defaultValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

// Int truncates Value.
func (cv *Cvar) Int() int {
	return int(cv.value)
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Toggle() {
	if cv.String() == "1" {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0"
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[name]
	return cv, ok
}

func GetByID(id int) (*Cvar, error) {
	if id < 0 || id >= len(cvarArray) {
		return nil, errors.Errorf("id %d out of bounds", id)
	}
	return cvarArray[id], nil
}

// Set assigns value to the registered cvar name.
func Set(name, value string) error {
	cv, ok := Get(name)
	if !ok {
		return errors.Wrap(ErrUnknown, name)
	}
	if cv.rom {
		return errors.Wrap(ErrReadOnly, name)
	}
	cv.SetByString(value)
	return nil
}

// Assign parses "name=value" and calls Set.
func Assign(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return errors.Errorf("expected name=value, got %q", s)
	}
	return Set(strings.TrimSpace(name), strings.TrimSpace(value))
}

func ResetAll() {
	for _, cv := range cvarArray {
		cv.Reset()
	}
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	pos := len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	cv.id = pos
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Wrap(ErrRegistered, name)
	}

	cv := create(name, value)

	if flags&NOTIFY != 0 {
		cv.notify = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}

	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		panic(err)
	}
	return cv
}
