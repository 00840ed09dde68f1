package main

import (
	"fmt"
	"os"

	"github.com/aldocassola/gomd5"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "md5sum"
	app.Usage = "print MD5 checksums of the given files, or of standard input"
	app.ArgsUsage = "[file ...]"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log,l",
			Usage: "log level: debug,info,warning,error",
			Value: "warning",
		},
	}

	app.Before = func(c *cli.Context) error {
		lv, err := logrus.ParseLevel(c.String("log"))
		if err != nil {
			return err
		}
		logrus.SetLevel(lv)
		return nil
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		sum, err := gomd5.SumReader(os.Stdin)
		if err != nil {
			return err
		}
		fmt.Printf("%s  -\n", sum.Hex())
		return nil
	}

	failed := false
	for _, path := range c.Args() {
		sum, err := gomd5.SumFile(path)
		if err != nil {
			logrus.Errorf("%s: %v", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s  %s\n", sum.Hex(), path)
	}
	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}
