// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseConfigurationFile - read and execute a Lua files and assign
// the results to a configuration structure
func ParseConfigurationFile(fileName string, config interface{}) error {
	if "" == fileName {
		return fault.ErrRequiredConfigFile
	}
	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ErrNotFoundConfigFile
		}
		return err
	}

	return parse(fileName, config, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - execute a Lua chunk held in memory,
// name is only used as arg[0]
func ParseConfigurationString(name string, source string, config interface{}) error {
	return parse(name, config, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func parse(name string, config interface{}, execute func(*lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(name))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := execute(L); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", name)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mp, ok := gluamapper.ToGoValue(table, mapperOption).(map[interface{}]interface{})
	if !ok {
		return fmt.Errorf("configuration: %q returned an array, not a table", name)
	}

	// Lua has only one number type, so a fractional value can reach an
	// integer field and would otherwise be truncated
	var nonInteger error
	integerNumbers := func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if reflect.Float64 != from || !isIntegerKind(to) {
			return data, nil
		}
		f := data.(float64)
		if f == math.Trunc(f) {
			return data, nil
		}
		err := fmt.Errorf("%w: %v", fault.ErrNotIntegerNumber, f)
		if nil == nonInteger {
			nonInteger = err
		}
		return nil, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncKind(integerNumbers),
		WeaklyTypedInput: true,
		Result:           config,
		TagName:          mapperOption.TagName,
	})
	if nil != err {
		return err
	}

	if err := decoder.Decode(mp); nil != err {
		if nil != nonInteger {
			return nonInteger
		}
		return err
	}
	return nil
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
