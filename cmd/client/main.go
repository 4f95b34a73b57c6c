package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cheynewallace/tabby"
	"github.com/picochain/go-node/internal/log"
	"github.com/picochain/go-node/pkg/chain"
	"github.com/picochain/go-node/pkg/client"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "Picochain Client"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Value: "http://localhost:8000/",
			Usage: "node API address",
		},
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:   "chain",
		Usage:  "list accepted blocks",
		Action: listChain,
	})

	app.Commands = append(app.Commands, &cli.Command{
		Name:   "utxo",
		Usage:  "list currently spendable output hashes",
		Action: listUnspent,
	})

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "submit",
		Usage:     "submit a transaction from a JSON file",
		ArgsUsage: "<tx.json>",
		Action:    submit,
	})

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func listChain(c *cli.Context) error {
	cc := client.NewClient(c.String("host"))

	info, err := cc.Chain()
	if err != nil {
		return err
	}

	t := tabby.New()
	t.AddHeader("Index", "Hash", "Prev Hash", "Tx Count")
	for _, b := range info.Blocks {
		t.AddLine(b.Index, b.Hash.String(), b.PrevHash.String(), len(b.Transactions))
	}

	t.Print()
	fmt.Printf("chain length: %d, pending transactions: %d\n", info.Length, info.PoolSize)

	return nil
}

func listUnspent(c *cli.Context) error {
	cc := client.NewClient(c.String("host"))

	hashes, err := cc.UnspentOutputs()
	if err != nil {
		return err
	}

	t := tabby.New()
	t.AddHeader("Output Hash")
	for _, h := range hashes {
		t.AddLine(h.String())
	}

	t.Print()
	return nil
}

func submit(c *cli.Context) error {
	if c.Args().Len() != 1 {
		fmt.Println("Provide a transaction JSON file")
		return nil
	}

	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	var tx chain.Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return err
	}

	cc := client.NewClient(c.String("host"))
	if err := cc.SubmitTransaction(tx); err != nil {
		return err
	}

	fmt.Printf("transaction %s has been queued\n", tx.Hash())
	return nil
}
