package cmd

import (
	"log"

	"github.com/aRestless/nxview/pkg/model"
	"github.com/aRestless/nxview/pkg/nxapi"
	"github.com/aRestless/nxview/pkg/server"
	"github.com/spf13/cobra"
)

func serve(cmd *cobra.Command, args []string) {
	l, err := newLogger(logLevel)
	if err != nil {
		log.Fatal(err)
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		l.Fatalf("getting --addr flag: %v", err)
	}

	dbPath, err := cmd.Flags().GetString("db.path")
	if err != nil {
		l.Fatalf("getting --db.path flag: %v", err)
	}

	uiUser, err := cmd.Flags().GetString("ui.username")
	if err != nil {
		l.Fatalf("getting --ui.username flag: %v", err)
	}

	uiHash, err := cmd.Flags().GetString("ui.passwordHash")
	if err != nil {
		l.Fatalf("getting --ui.passwordHash flag: %v", err)
	}

	db, err := model.NewDatabase(dbPath, l)
	if err != nil {
		l.Fatalf("create database: %v", err)
	}
	history := model.NewHistory(db, l)

	device, err := nxapi.New(deviceIn.Config(), l, nxapi.WithRecorder(history))
	if err != nil {
		l.Fatalf("create NX-API client: %v", err)
	}

	if deviceIn.InsecureSkipVerify {
		l.Warnf("certificate verification for %s is disabled", deviceIn.URL)
	}

	opts := []func(*server.Server){
		server.WithDevice(device),
		server.WithHistory(history),
		server.WithLogger(l),
	}

	if addr != "" {
		opts = append(opts, server.WithAddress(addr))
	}

	if uiUser != "" || uiHash != "" {
		auth, err := server.NewBasicAuthenticator(uiUser, uiHash, l)
		if err != nil {
			l.Fatalf("configure UI authentication: %v", err)
		}
		opts = append(opts, server.WithBasicAuth(auth))
	}

	s := server.New(opts...)
	l.Fatal(s.Serve())
}
