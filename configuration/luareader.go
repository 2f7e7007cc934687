// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/highscored/fault"
)

const tagName = "gluamapper"

// ParseConfigurationFile - run a Lua script and copy the table it
// returns into the structure pointed to by config
//
// fields absent from the returned table keep their current values,
// so defaults can be set before calling
func ParseConfigurationFile(fileName string, config interface{}) error {
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}

	state := lua.NewState()
	defer state.Close()

	table, err := execute(state, fileName)
	if nil != err {
		return err
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: keepName,
		TagName:  tagName,
	})
	return mapper.Map(table, config)
}

// run the script and fetch the table left on top of the stack
func execute(state *lua.LState, fileName string) (*lua.LTable, error) {
	state.OpenLibs()

	arg := state.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	state.SetGlobal("arg", arg)

	if err := state.DoFile(fileName); nil != err {
		return nil, err
	}

	table, ok := state.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("configuration: %q did not return a table", fileName)
	}
	return table, nil
}

// table keys are used exactly as written
func keepName(s string) string {
	return s
}
