package extract

import (
	"reflect"
	"testing"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Lookup("go"); !ok {
		t.Error("go strategy should be registered")
	}
	if _, ok := r.Lookup("markdown"); ok {
		t.Error("markdown should have no strategy")
	}
	if refs := r.Extract("unknown", []byte("import x")); refs != nil {
		t.Errorf("unknown tag should extract nothing, got %v", refs)
	}
}

func TestSharedStrategies(t *testing.T) {
	r := NewRegistry()
	js, _ := r.Lookup("javascript")
	ts, _ := r.Lookup("typescript")
	if js != ts {
		t.Error("javascript and typescript should share one strategy")
	}
	c, _ := r.Lookup("c")
	cpp, _ := r.Lookup("cpp")
	if c != cpp {
		t.Error("c and cpp should share one strategy")
	}
}

func TestGoExtract(t *testing.T) {
	src := `package main

import "fmt"
import alias "strings"

import (
	"os"
	inner "net/http"
	_ "embed"
)

func main() {}
`
	got := NewRegistry().Extract("go", []byte(src))
	want := []string{"fmt", "strings", "os", "net/http", "embed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJavaScriptExtract(t *testing.T) {
	src := `import React from 'react';
import './styles.css';
import { helper } from '../lib/helper';
export { thing } from './thing';
const config = require('./config');
const lazy = import('./lazy');
import remote from 'https://cdn.example.com/lib.js';
`
	got := NewRegistry().Extract("javascript", []byte(src))
	want := []string{"react", "./styles.css", "../lib/helper", "./thing", "./config", "./lazy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPythonExtract(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"absolute imports with aliases",
			"import os\nimport numpy as np, pandas\n",
			[]string{"os", "numpy", "pandas"},
		},
		{
			"from import",
			"from collections import OrderedDict\n",
			[]string{"collections"},
		},
		{
			"relative from",
			"from .models import User\nfrom ..utils.text import slug\n",
			[]string{"./models", "../utils/text"},
		},
		{
			"bare relative import names siblings",
			"from . import helpers, config\n",
			[]string{"./helpers", "./config"},
		},
	}
	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Extract("python", []byte(tt.src))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRubyExtract(t *testing.T) {
	src := `require 'json'
require_relative 'helpers/text'
load 'setup.rb'
`
	got := NewRegistry().Extract("ruby", []byte(src))
	want := []string{"json", "./helpers/text", "setup.rb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJavaExtract(t *testing.T) {
	src := `package com.example.app;

import java.util.List;
import static org.junit.Assert.assertEquals;
import com.example.util.*;
`
	got := NewRegistry().Extract("java", []byte(src))
	want := []string{"java.util.List", "org.junit.Assert.assertEquals", "com.example.util"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRustExtract(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"mod decl", "mod parser;\npub mod lexer;\n", []string{"./parser", "./lexer"}},
		{"crate use", "use crate::graph::node;\n", []string{"graph/node"}},
		{"super use", "use super::super::config;\n", []string{"../../config"}},
		{"self use", "use self::tokens;\n", []string{"./tokens"}},
		{"std skipped", "use std::collections::HashMap;\n", nil},
	}
	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Extract("rust", []byte(tt.src))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCExtract(t *testing.T) {
	src := `#include <stdio.h>
#include "util.h"
# include "sub/helpers.h"
`
	got := NewRegistry().Extract("c", []byte(src))
	want := []string{"stdio.h", "util.h", "sub/helpers.h"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCSharpExtract(t *testing.T) {
	src := `using System;
using static System.Math;
using Project = MyCompany.Project;

namespace App {}
`
	got := NewRegistry().Extract("csharp", []byte(src))
	want := []string{"System", "System.Math", "MyCompany.Project"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPHPExtract(t *testing.T) {
	src := `<?php
require_once('config.php');
include 'lib/helpers.php';
use App\Models\User;
`
	got := NewRegistry().Extract("php", []byte(src))
	want := []string{"config.php", "lib/helpers.php", `App\Models\User`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShellExtract(t *testing.T) {
	src := `#!/bin/bash
source ./lib/common.sh
. helpers.sh
source "$HOME/dynamic.sh"
`
	got := NewRegistry().Extract("shell", []byte(src))
	want := []string{"./lib/common.sh", "helpers.sh"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHTMLExtract(t *testing.T) {
	src := `<html>
<head>
  <link rel="stylesheet" href="css/site.css">
  <script src="js/app.js"></script>
  <script src="https://cdn.example.com/lib.js"></script>
</head>
<body>
  {% include "partials/nav.html" %}
  {{> footer }}
</body>
</html>
`
	got := NewRegistry().Extract("html", []byte(src))
	want := []string{"css/site.css", "js/app.js", "partials/nav.html", "footer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDedupePreservesOrder(t *testing.T) {
	src := "import \"fmt\"\nimport \"fmt\"\nimport \"os\"\n"
	got := NewRegistry().Extract("go", []byte(src))
	want := []string{"fmt", "os"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
