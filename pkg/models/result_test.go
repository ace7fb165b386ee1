package models

import "testing"

func TestRunResultSuccess(t *testing.T) {
	result := &RunResult{
		Ecosystems: []EcosystemResult{
			{Ecosystem: "Go", AllSucceeded: true},
			{Ecosystem: "Rust", AllSucceeded: true},
		},
	}
	if !result.Success() {
		t.Error("all ecosystems passing means global success")
	}

	result.Ecosystems[1].AllSucceeded = false
	if result.Success() {
		t.Error("one failing ecosystem means global failure")
	}
}

func TestRunResultSuccessEmpty(t *testing.T) {
	result := &RunResult{}
	if !result.Success() {
		t.Error("no ecosystems is vacuous success")
	}
}

func TestRunResultFailed(t *testing.T) {
	result := &RunResult{
		Ecosystems: []EcosystemResult{
			{Ecosystem: "Go", AllSucceeded: true},
			{Ecosystem: "Rust", AllSucceeded: false},
			{Ecosystem: "Maven", AllSucceeded: false},
		},
	}
	failed := result.Failed()
	if len(failed) != 2 || failed[0] != "Rust" || failed[1] != "Maven" {
		t.Errorf("Failed() = %v", failed)
	}
}
