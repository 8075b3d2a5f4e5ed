package main

import (
	"os"

	"github.com/tuannh982/valmap/hashmap"
	"github.com/tuannh982/valmap/utils/collections"
	"github.com/tuannh982/valmap/value"
	"golang.org/x/exp/slices"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)
	logger := log.WithFields(log.Fields{"component": "demo"})

	m, err := hashmap.New(hashmap.DefaultBucketCount, hashmap.WithMaxLoad(4))
	if err != nil {
		logger.WithError(err).Error("could not create map")
		os.Exit(1)
	}
	defer m.Destroy()

	must(m.Set(value.String("a"), value.Integer(1)))
	must(m.Set(value.String("b"), value.Integer(2)))
	must(m.Set(value.String("c"), value.Integer(3)))
	must(m.Set(value.String("a"), value.Integer(4)))

	child, err := hashmap.New(4)
	if err != nil {
		logger.WithError(err).Error("could not create child map")
		os.Exit(1)
	}
	must(child.Set(value.String("list"), value.NewList(value.Integer(1), value.Boolean(true), value.Nil{})))
	must(m.Set(value.String("child"), child))

	removed, err := m.Remove(value.String("b"))
	must(err)
	logger.WithField("removed", removed).Info("remove b")

	entries := make([]string, 0, m.Size())
	m.Foreach(func(k, v value.Value) bool {
		entries = append(entries, k.String()+"="+v.String())
		return true
	})
	slices.Sort(entries)
	logger.WithFields(log.Fields{
		"size":     m.Size(),
		"hashcode": m.Hashcode(),
		"stats":    m.Stats(),
	}).Info("map ", entries)

	flat, err := hashmap.New(2)
	if err != nil {
		logger.WithError(err).Error("could not create flat map")
		os.Exit(1)
	}
	defer flat.Destroy()
	must(flat.Set(value.String("a"), value.Integer(4)))
	must(flat.Set(value.String("c"), value.Integer(3)))

	same := collections.NewBuiltinMap()
	defer same.Destroy()
	must(same.Set(value.String("c"), value.Integer(3)))
	must(same.Set(value.String("a"), value.Integer(4)))
	logger.WithFields(log.Fields{
		"equal":    flat.Equals(same),
		"hashcode": same.Hashcode(),
	}).Info("compare with builtin map")
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
