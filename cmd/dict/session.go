package main

import (
	"io"

	"github.com/pior/dict"
	"github.com/pior/dict/internal/config"
)

// session runs queries on one client and prints the results.
type session struct {
	client   *dict.Client
	defaults config.DefaultsConfig
	out      io.Writer
	width    int
}

func newSession(client *dict.Client, defaults config.DefaultsConfig, out io.Writer, width int) *session {
	return &session{client: client, defaults: defaults, out: out, width: width}
}

func (s *session) close() error {
	return s.client.Close()
}

func (s *session) database(name string) dict.Database {
	if name == "" {
		name = s.defaults.Database
	}
	return dict.Database{Name: name}
}

func (s *session) strategy(name string) dict.MatchingStrategy {
	if name == "" {
		name = s.defaults.Strategy
	}
	return dict.MatchingStrategy{Name: name}
}

func (s *session) databases() error {
	databases, err := s.client.Databases()
	if err != nil {
		return err
	}
	return writeDatabases(s.out, databases)
}

func (s *session) strategies() error {
	strategies, err := s.client.Strategies()
	if err != nil {
		return err
	}
	return writeStrategies(s.out, strategies)
}

func (s *session) match(pattern, strategy, database string) error {
	words, err := s.client.Match(pattern, s.strategy(strategy), s.database(database))
	if err != nil {
		return err
	}
	return writeWords(s.out, words)
}

func (s *session) define(word, database string) error {
	definitions, err := s.client.Define(word, s.database(database))
	if err != nil {
		return err
	}
	return writeDefinitions(s.out, word, definitions, s.width)
}

func (s *session) info(database string) error {
	lines, err := s.client.Info(dict.Database{Name: database})
	if err != nil {
		return err
	}
	return writeLines(s.out, lines)
}

func (s *session) server() error {
	lines, err := s.client.ServerInfo()
	if err != nil {
		return err
	}
	return writeLines(s.out, lines)
}

func (s *session) stats() error {
	return writeStats(s.out, s.client.Stats())
}
